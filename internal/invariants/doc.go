// Copyright 2025 The Ordtree Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

// Package invariants gates expensive runtime checks behind the "invariants"
// build tag (also enabled under the race detector). Code guarded by
// invariants.Enabled compiles away entirely in regular builds.
package invariants
