// Package testutil carries assertion helpers shared by the service and
// storage tests.
package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/testing/protocmp"

	"github.com/AnaRamirez60/SistemasDistribuidos2025/pkg/log"
)

// ProtoDiff fails the test when two messages are not equal, printing a
// field-level diff. Fields named in ignoreFields (e.g. a storage-assigned
// id) are excluded from the comparison.
func ProtoDiff[M proto.Message](t *testing.T, msg string, exp, got M, ignoreFields ...protoreflect.Name) {
	t.Helper()

	opts := []cmp.Option{
		protocmp.Transform(),
		protocmp.IgnoreFields(exp, ignoreFields...),
	}

	if diff := cmp.Diff(exp, got, opts...); diff != "" {
		t.Fatalf("%v (-exp, +got):\n%v", msg, diff)
	}
}

// ProtoSlicesDiff is ProtoDiff over slices. A nil slice and an empty one
// compare equal, so callers can assert "no messages" without caring which of
// the two a stream produced.
func ProtoSlicesDiff[M proto.Message](t *testing.T, msg string, exp, got []M, ignoreFields ...protoreflect.Name) {
	t.Helper()

	opts := []cmp.Option{
		protocmp.Transform(),
		cmpopts.EquateEmpty(),
	}
	if len(exp) > 0 {
		opts = append(opts, protocmp.IgnoreFields(exp[0], ignoreFields...))
	}

	if diff := cmp.Diff(exp, got, opts...); diff != "" {
		t.Fatalf("%v (-exp, +got):\n%v", msg, diff)
	}
}

// testLogger turns unexpected error logs into test failures, so a handler
// that falls into its internal-error path fails loudly even when the test
// only asserts on the response.
type testLogger struct {
	log.NopLogger
	t *testing.T
}

func (l *testLogger) Errorw(msg string, v ...interface{}) {
	l.t.Helper()
	l.t.Fatalf(msg+": %v", v...)
}

// NewLogger returns a Logger for use in tests.
func NewLogger(t *testing.T) log.Logger {
	t.Helper()
	return &testLogger{t: t}
}
