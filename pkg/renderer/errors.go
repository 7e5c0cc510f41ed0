// pkg/renderer/errors.go
// Copyright(c) 2026 ember contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package renderer

import "errors"

var (
	// ErrBatchFull is returned by Batch.add when the batch is at
	// capacity. Scene.AddSprite absorbs it by allocating another batch,
	// so callers of the Scene never see it.
	ErrBatchFull = errors.New("batch is at capacity")

	// ErrNotHosted is returned when syncing or removing a sprite that is
	// not currently hosted by a batch. This is a caller bug, not a
	// recoverable runtime condition.
	ErrNotHosted = errors.New("sprite is not hosted by a batch")

	// ErrWrongBatch is returned when a sprite operation is directed at a
	// batch other than the one hosting it.
	ErrWrongBatch = errors.New("sprite is hosted by a different batch")

	// ErrStaleSprite is returned when a sprite's slot handle no longer
	// matches the batch's generation counter for that slot, i.e. the
	// slot has been vacated or reassigned since the sprite last held it.
	ErrStaleSprite = errors.New("sprite slot handle is stale")

	// ErrAlreadyHosted is returned when adding a sprite that is already
	// in a batch.
	ErrAlreadyHosted = errors.New("sprite is already hosted by a batch")

	// ErrNilTexture is returned when hosting a sprite that has no
	// texture; batches are keyed by texture, so there is no batch that
	// could accept it.
	ErrNilTexture = errors.New("sprite has no texture")
)
