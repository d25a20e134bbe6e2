// Copyright 2026 Blink Labs Software
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

package destcheck

import (
	"log/slog"

	"github.com/blinklabs-io/destcheck/paymentcode"
)

// CheckerOptionFunc is a type that represents functions that modify the Checker config
type CheckerOptionFunc func(*Checker)

// WithLogger specifies the logger used by the address and payment code
// validators. If none is provided, slog.Default() is used
func WithLogger(logger *slog.Logger) CheckerOptionFunc {
	return func(c *Checker) {
		c.logger = logger
	}
}

// WithPaymentCodeCheckers specifies the payment code schemes to accept, in
// evaluation order. The default is BIP47 followed by BIP352
func WithPaymentCodeCheckers(
	checkers ...paymentcode.Checker,
) CheckerOptionFunc {
	return func(c *Checker) {
		c.paymentCodeCheckers = checkers
	}
}
