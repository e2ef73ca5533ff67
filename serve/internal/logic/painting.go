package logic

import (
	"context"

	"github.com/HuXin0817/painting/pkg/models/message"
	"github.com/HuXin0817/painting/pkg/models/painting"
	"github.com/HuXin0817/painting/serve/internal/svc"
	"github.com/HuXin0817/painting/serve/internal/types"
)

func parsePaintingUid(s string) (message.PaintingUid, error) {
	uid := message.PaintingUid(s)
	if !uid.Valid() {
		return "", ErrInvalidPaintingUid
	}
	return uid, nil
}

// withPainting runs f on the stored surface while holding the painting's
// lock. When save is set the surface is written back even if f fails, so a
// failed placement still clears the pending kind.
func withPainting(ctx context.Context, svcCtx *svc.ServiceContext, uidStr string, save bool, f func(uid message.PaintingUid, s *painting.Surface) error) error {
	uid, err := parsePaintingUid(uidStr)
	if err != nil {
		return err
	}

	return svcCtx.Lock(uid).Do(func() error {
		s, err := svcCtx.Store.Load(ctx, uid)
		if err != nil {
			return err
		}

		fErr := f(uid, s)
		if !save {
			return fErr
		}

		if err := svcCtx.Store.Save(ctx, uid, s); err != nil {
			return err
		}
		return fErr
	})
}

func paintingResponse(uid message.PaintingUid, s *painting.Surface) *types.PaintingResponse {
	resp := &types.PaintingResponse{
		PaintingUid: string(uid),
		Width:       s.Width(),
		Height:      s.Height(),
		Items:       s.Len(),
	}

	if kind, ok := s.Pending(); ok {
		resp.Pending = kind.String()
	}

	return resp
}

func valueResponse(b painting.Breakdown) *types.ValueResponse {
	resp := &types.ValueResponse{
		Value:         b.Total,
		TreeBonus:     b.TreeBonus,
		Contributions: make([]types.Contribution, 0, len(b.Contributions)),
	}

	for _, c := range b.Contributions {
		resp.Contributions = append(resp.Contributions, types.Contribution{
			X:     c.Item.X,
			Y:     c.Item.Y,
			Kind:  c.Item.Kind.String(),
			Score: c.Score,
		})
	}

	return resp
}
