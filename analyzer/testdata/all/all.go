// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package all // want `body_scope of file: read=\[\] modified=\[abs sum twice\]`

func abs(x int) int { // want `body_scope of function abs: read=\[x\] modified=\[x\]` `scope of signature: read=\[\] modified=\[x\] params=\[x\]`
	if x < 0 { // want `body_scope of if: read=\[x\] modified=\[x\]` `orelse_scope of if: read=\[\] modified=\[\]` `cond_scope of if: read=\[x\] modified=\[\]`
		x = -x
	}

	return x
}

func sum(xs []int) (total int) { // want `body_scope of function sum: read=\[total x xs\] modified=\[total x\]` `scope of signature: read=\[\] modified=\[total xs\] params=\[xs total\]`
	for _, x := range xs { // want `body_scope of range: read=\[total x\] modified=\[total x\]`
		total += x
	}

	return
}

func twice(f func(int) int, v int) int { // want `body_scope of function twice: read=\[f v\] modified=\[\]` `scope of signature: read=\[\] modified=\[f v\] params=\[f v\]`
	return f(f(v)) // want `args_scope of call: read=\[f v\] modified=\[\]` `args_scope of call: read=\[v\] modified=\[\]`
}
