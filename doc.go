//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package bigint implements arbitrary-precision signed integers. The
// integers are stored as a sign and a normalized string of decimal
// digits. The Int values are immutable and all operations return new
// values.
//
// The Add and Sub operations combine the magnitudes of their operands
// and ignore the operand signs. Use AddSigned and SubSigned for signed
// addition and subtraction.
package bigint
