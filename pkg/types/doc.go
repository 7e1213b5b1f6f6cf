// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the configuration and record types shared by the
// npy2fits command and its internal packages.
package types
