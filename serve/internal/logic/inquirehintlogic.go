package logic

import (
	"cmp"
	"context"
	"slices"

	"github.com/HuXin0817/painting/pkg/models/message"
	"github.com/HuXin0817/painting/pkg/models/painting"
	"github.com/HuXin0817/painting/serve/internal/svc"
	"github.com/HuXin0817/painting/serve/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type InquireHintLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewInquireHintLogic(ctx context.Context, svcCtx *svc.ServiceContext) *InquireHintLogic {
	return &InquireHintLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// InquireHint reports the best placements assessed so far for the current
// step of the painting.
func (l *InquireHintLogic) InquireHint(req *types.InquireHintRequest) (resp *types.InquireHintResponse, err error) {
	kind, err := painting.ParseKind(req.Kind)
	if err != nil {
		return nil, err
	}

	err = withPainting(l.ctx, l.svcCtx, req.PaintingUid, false, func(uid message.PaintingUid, s *painting.Surface) error {
		key := message.AssessMessageKey{
			PaintingUid: uid,
			Step:        s.Len(),
			Kind:        kind,
		}

		members, err := l.svcCtx.Hints.Assessments(l.ctx, key)
		if err != nil {
			return err
		}

		best, points, found := message.BestAssessment(members)
		resp = &types.InquireHintResponse{
			Step:             key.Step,
			Found:            found,
			Gain:             best.Gain,
			Points:           make([]types.Point, 0, len(points)),
			CalculatedNumber: len(members),
		}
		for _, p := range sortPoints(points) {
			resp.Points = append(resp.Points, types.Point{X: p.X, Y: p.Y})
		}
		return nil
	})
	return
}

func sortPoints(points []painting.Point) []painting.Point {
	slices.SortFunc(points, func(a, b painting.Point) int {
		if a.Y != b.Y {
			return cmp.Compare(a.Y, b.Y)
		}
		return cmp.Compare(a.X, b.X)
	})
	return points
}
