package weaksubjectivity

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	types "github.com/prysmaticlabs/eth2-types"

	"github.com/halcyon-eth/halcyon/shared/bytesutil"
)

// Config holds the operator-supplied weak subjectivity settings. It is
// constructed once at startup and treated as immutable for the lifetime of
// the validator built from it. Nil fields mean the corresponding setting is
// absent.
type Config struct {
	// Checkpoint is the trusted (epoch, block root) anchor, if any.
	Checkpoint *Checkpoint
	// SuppressWSPeriodChecksUntilEpoch silences weak subjectivity period
	// violations until the given epoch. The effective value is clamped to at
	// most maxSuppressedEpochs ahead of the epoch first observed by the
	// validator.
	SuppressWSPeriodChecksUntilEpoch *types.Epoch
}

// ParseCheckpoint parses a weak subjectivity checkpoint in the standard
// <block_root>:<epoch> input form, where the root is 0x-prefixed and
// hex-encoded. Example:
// 0x1c35540cac127315fabb6bf29181f2ae0de1a3fc909d2e76ba771e61312cc49a:74888
func ParseCheckpoint(s string) (*Checkpoint, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return nil, errors.Errorf("invalid weak subjectivity checkpoint %q, expected format <block_root>:<epoch>", s)
	}
	rootStr := strings.TrimPrefix(parts[0], "0x")
	root, err := hex.DecodeString(rootStr)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid block root in weak subjectivity checkpoint %q", s)
	}
	if len(root) != 32 {
		return nil, errors.Errorf("invalid block root in weak subjectivity checkpoint %q, expected 32 bytes but got %d", s, len(root))
	}
	epoch, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid epoch in weak subjectivity checkpoint %q", s)
	}
	return &Checkpoint{
		Epoch: types.Epoch(epoch),
		Root:  bytesutil.ToBytes32(root),
	}, nil
}
