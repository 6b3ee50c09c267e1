// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package biosimd provides small, allocation-conscious sequence primitives
// used on the hot path of MAF block processing: an IUPAC-aware complement
// table and reverse-complementation over it.
package biosimd
