package api

import (
	"context"

	"github.com/gogpu/gputypes"

	"gooze.dev/pkg/cts/internal/domain"
	"gooze.dev/pkg/cts/internal/params"
	"gooze.dev/pkg/cts/internal/registry"
)

func init() {
	registry.Register(suite, "api/buffer", bufferSpec)
}

var usageNames = []any{
	"map_read", "map_write", "copy_src", "copy_dst", "index",
	"vertex", "uniform", "storage", "indirect", "query_resolve",
}

func bufferSpec() *domain.SpecFile {
	g := domain.NewTestGroup()

	g.Test("create,usage").
		Desc(`Test combinations of two usage flags. MAP_READ pairs only with COPY_DST
and MAP_WRITE only with COPY_SRC.`).
		Params(params.Options("usage1", usageNames...).
			CombineOptions("usage2", usageNames...)).
		Fn(func(_ context.Context, t *domain.Fixture) error {
			p := t.Params()
			usage := bufferUsages[p.Text("usage1")] | bufferUsages[p.Text("usage2")]

			err := ValidateBufferDescriptor(gputypes.BufferDescriptor{Label: "usage", Size: 16, Usage: usage})

			mapRead := usage&gputypes.BufferUsageMapRead != 0
			mapWrite := usage&gputypes.BufferUsageMapWrite != 0
			rest := usage &^ (gputypes.BufferUsageMapRead | gputypes.BufferUsageMapWrite)

			switch {
			case mapRead && (mapWrite || rest&^gputypes.BufferUsageCopyDst != 0):
				t.ExpectError(err, ErrMapReadUsage)
			case mapWrite && rest&^gputypes.BufferUsageCopySrc != 0:
				t.ExpectError(err, ErrMapWriteUsage)
			default:
				t.ExpectOK(err)
			}

			return nil
		})

	g.Test("create,empty_usage").Fn(func(_ context.Context, t *domain.Fixture) error {
		t.ExpectError(ValidateBufferDescriptor(gputypes.BufferDescriptor{Size: 16}), ErrEmptyUsage)
		return nil
	})

	g.Test("create,unknown_usage").Fn(func(_ context.Context, t *domain.Fixture) error {
		err := ValidateBufferDescriptor(gputypes.BufferDescriptor{
			Size:  16,
			Usage: gputypes.BufferUsageStorage | gputypes.BufferUsage(1<<20),
		})
		t.ExpectError(err, ErrUnknownUsage)

		return nil
	})

	g.Test("create,mapped_at_creation").
		Desc("Buffers mapped at creation need a size aligned to 4 bytes.").
		Params(params.Options("size", 0, 2, 4, 6, 16).CombineOptions("mapped", true, false)).
		Fn(func(_ context.Context, t *domain.Fixture) error {
			p := t.Params()
			size := uint64(p.Number("size"))

			err := ValidateBufferDescriptor(gputypes.BufferDescriptor{
				Size:             size,
				Usage:            gputypes.BufferUsageUniform,
				MappedAtCreation: p.Flag("mapped"),
			})
			if p.Flag("mapped") && size%4 != 0 {
				t.ExpectError(err, ErrMisalignedSize)
				return nil
			}

			t.ExpectOK(err)

			return nil
		})

	g.Test("map,device_lost").
		Desc("TODO: mapping after device loss needs a hosted device.").
		Unimplemented()

	return &domain.SpecFile{
		Description: "Validation of createBuffer descriptors.",
		G:           g,
	}
}
