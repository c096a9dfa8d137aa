// Package api holds the webgpu:api,* spec files.
package api

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"

	"gooze.dev/pkg/cts/internal/registry"
)

const suite = "webgpu"

func init() {
	registry.RegisterReadme(suite, "api", "Tests of WebGPU API object validation rules.")
}

// Buffer usage validation errors.
var (
	ErrEmptyUsage     = errors.New("buffer usage must not be empty")
	ErrMapReadUsage   = errors.New("MAP_READ may only be combined with COPY_DST")
	ErrMapWriteUsage  = errors.New("MAP_WRITE may only be combined with COPY_SRC")
	ErrUnknownUsage   = errors.New("unknown buffer usage bits")
	ErrMisalignedSize = errors.New("mapped buffer size must be a multiple of 4")
)

// bufferUsages names the usage flags as they appear in case params.
var bufferUsages = map[string]gputypes.BufferUsage{
	"map_read":      gputypes.BufferUsageMapRead,
	"map_write":     gputypes.BufferUsageMapWrite,
	"copy_src":      gputypes.BufferUsageCopySrc,
	"copy_dst":      gputypes.BufferUsageCopyDst,
	"index":         gputypes.BufferUsageIndex,
	"vertex":        gputypes.BufferUsageVertex,
	"uniform":       gputypes.BufferUsageUniform,
	"storage":       gputypes.BufferUsageStorage,
	"indirect":      gputypes.BufferUsageIndirect,
	"query_resolve": gputypes.BufferUsageQueryResolve,
}

// ValidateBufferDescriptor applies the createBuffer usage and size rules.
func ValidateBufferDescriptor(desc gputypes.BufferDescriptor) error {
	usage := desc.Usage

	switch {
	case usage == gputypes.BufferUsageNone:
		return ErrEmptyUsage
	case usage.ContainsUnknownBits():
		return fmt.Errorf("%w: 0x%x", ErrUnknownUsage, uint64(usage))
	case usage.Contains(gputypes.BufferUsageMapRead) && usage&^(gputypes.BufferUsageMapRead|gputypes.BufferUsageCopyDst) != 0:
		return ErrMapReadUsage
	case usage.Contains(gputypes.BufferUsageMapWrite) && usage&^(gputypes.BufferUsageMapWrite|gputypes.BufferUsageCopySrc) != 0:
		return ErrMapWriteUsage
	case desc.MappedAtCreation && desc.Size%4 != 0:
		return ErrMisalignedSize
	}

	return nil
}
