package bridge

import (
	"context"

	"github.com/textshop/inlay/internal/domain/value"
	"github.com/textshop/inlay/internal/logging"
)

// MarshalResult converts a raw engine serialization into an editor value.
// Serializations the decoder cannot represent degrade to nil with a
// diagnostic instead of failing the completion; the editor-side callback
// always receives a value.
func MarshalResult(ctx context.Context, raw []byte) value.Value {
	v, err := value.Decode(raw)
	if err != nil {
		logging.FromContext(ctx).Warn().
			Err(err).
			Int("bytes", len(raw)).
			Msg("script result not representable, substituting nil")
		return value.Nil{}
	}
	return v
}
