// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoFreePort     = errors.New("no free port found")
	errInvalidAddress = errors.New("invalid listen address")
)
