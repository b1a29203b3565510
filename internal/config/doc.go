// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package config defines the format-agnostic project configuration model of a
// contract build/test toolchain and the logic that resolves it.
//
// # Core Concepts
//
//   - RawConfig: the user-authored, partially specified tree. Every field is a
//     pointer or a map, so an explicit false or 0 is distinguishable from an
//     omitted value.
//
//   - DefaultConfig: the built-in fallback table. Defaults returns a fresh copy
//     each call.
//
//   - ResolvedConfig: the immutable result of merging a RawConfig over the
//     defaults and validating it. Accessors return copies, so no consumer can
//     change what another consumer sees.
//
// Resolution is a pure function. It performs no I/O and no logging; reading
// files is the job of a Loader (see the loader package), and reporting errors
// is the job of the caller.
//
// # Errors
//
// Two error kinds are returned: *ParseError when the input does not have the
// expected shape, and *ValidationError when it is well-formed but violates an
// invariant. Use errors.As to tell them apart.
package config
