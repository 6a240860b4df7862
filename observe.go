// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gcomb

import "github.com/go-logr/logr"

// Observe wraps g with per-pull structured logging.
//
// Every produced value passes through unchanged and is V(1)-logged with the
// generator name and the pull ordinal. The logger is injected; the core
// owns no logger of its own, and the zero logr.Logger is a no-op.
func Observe[T any](g Generator[T], log logr.Logger, name string) Generator[T] {
	if log.GetSink() == nil {
		log = logr.Discard()
	}
	pull := 0
	return func() T {
		v := g()
		pull++
		log.V(1).Info("produced", "generator", name, "pull", pull, "value", v)
		return v
	}
}
