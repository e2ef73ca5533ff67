package logic

import (
	"context"
	"sync"
	"testing"

	"github.com/HuXin0817/painting/pkg/models/message"
	"github.com/HuXin0817/painting/pkg/models/painting"
	"github.com/HuXin0817/painting/serve/internal/config"
	"github.com/HuXin0817/painting/serve/internal/svc"
	"github.com/HuXin0817/painting/serve/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type placement struct {
	step int
	kind painting.Kind
	x, y int
	err  error
}

type recorder struct {
	mu         sync.Mutex
	started    int
	placements []placement
	ended      []int
}

func (r *recorder) RecordStart(message.PaintingUid, int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.started++
}

func (r *recorder) RecordPlacement(_ message.PaintingUid, step int, kind painting.Kind, x, y int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.placements = append(r.placements, placement{step: step, kind: kind, x: x, y: y, err: err})
}

func (r *recorder) RecordEnd(_ message.PaintingUid, s *painting.Surface) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ended = append(r.ended, s.Value())
}

func (r *recorder) Stop() {}

func newServiceContext() (*svc.ServiceContext, *recorder) {
	rec := &recorder{}
	locks := svc.NewMemoryLocks()

	return &svc.ServiceContext{
		Config:   config.Config{MaxSurfaceSize: 10},
		Store:    svc.NewMemoryStore(),
		Lock:     locks.Lock,
		Recorder: rec,
		Hints:    svc.NewMemoryHintQueue(),
	}, rec
}

func create(t *testing.T, svcCtx *svc.ServiceContext, width, height int) string {
	t.Helper()

	resp, err := NewCreatePaintingLogic(context.Background(), svcCtx).CreatePainting(&types.CreatePaintingRequest{Width: width, Height: height})
	require.NoError(t, err)
	return resp.PaintingUid
}

func paint(t *testing.T, svcCtx *svc.ServiceContext, uid, kind string, x, y int) error {
	t.Helper()

	ctx := context.Background()
	_, err := NewSelectLogic(ctx, svcCtx).Select(&types.SelectRequest{PaintingUid: uid, Kind: kind})
	require.NoError(t, err)

	_, err = NewAtLogic(ctx, svcCtx).At(&types.AtRequest{PaintingUid: uid, X: x, Y: y})
	return err
}

func TestCreatePainting(t *testing.T) {
	svcCtx, rec := newServiceContext()
	ctx := context.Background()

	resp, err := NewCreatePaintingLogic(ctx, svcCtx).CreatePainting(&types.CreatePaintingRequest{Width: 4, Height: 3})
	require.NoError(t, err)
	assert.True(t, message.PaintingUid(resp.PaintingUid).Valid())
	assert.Equal(t, 4, resp.Width)
	assert.Equal(t, 3, resp.Height)
	assert.Zero(t, resp.Items)
	assert.Equal(t, 1, rec.started)

	_, err = NewCreatePaintingLogic(ctx, svcCtx).CreatePainting(&types.CreatePaintingRequest{Width: 0, Height: 3})
	assert.ErrorIs(t, err, painting.ErrInvalidSize)

	_, err = NewCreatePaintingLogic(ctx, svcCtx).CreatePainting(&types.CreatePaintingRequest{Width: 11, Height: 3})
	assert.ErrorIs(t, err, ErrSurfaceTooLarge)
}

func TestEndToEnd(t *testing.T) {
	svcCtx, rec := newServiceContext()
	ctx := context.Background()
	uid := create(t, svcCtx, 5, 5)

	require.NoError(t, paint(t, svcCtx, uid, "tree", 0, 0))
	require.NoError(t, paint(t, svcCtx, uid, "river", 1, 1))
	require.NoError(t, paint(t, svcCtx, uid, "river", 2, 1))
	assert.ErrorIs(t, paint(t, svcCtx, uid, "cloud", 0, 0), painting.ErrAlreadyPainted)
	require.NoError(t, paint(t, svcCtx, uid, "cloud", 1, 0))

	value, err := NewValueLogic(ctx, svcCtx).Value(&types.PaintingRequest{PaintingUid: uid})
	require.NoError(t, err)
	assert.Equal(t, 8, value.Value)
	assert.Equal(t, 1, value.TreeBonus)
	assert.Len(t, value.Contributions, 4)

	render, err := NewRenderLogic(ctx, svcCtx).Render(&types.PaintingRequest{PaintingUid: uid})
	require.NoError(t, err)
	assert.Equal(t, []string{"🌲☁️...", ".🌊🌊..", ".....", ".....", "....."}, render.Rows)
	assert.Equal(t, "🌲☁️...\n.🌊🌊..\n.....\n.....\n.....\n", render.Text)

	require.Len(t, rec.placements, 5)
	assert.ErrorIs(t, rec.placements[3].err, painting.ErrAlreadyPainted)
	assert.Equal(t, 3, rec.placements[3].step)

	final, err := NewFinishLogic(ctx, svcCtx).Finish(&types.PaintingRequest{PaintingUid: uid})
	require.NoError(t, err)
	assert.Equal(t, 8, final.Value)
	assert.Equal(t, []int{8}, rec.ended)

	_, err = NewValueLogic(ctx, svcCtx).Value(&types.PaintingRequest{PaintingUid: uid})
	assert.ErrorIs(t, err, svc.ErrPaintingNotFound)
}

func TestFailedPlacementIsStoredWithoutPending(t *testing.T) {
	svcCtx, _ := newServiceContext()
	ctx := context.Background()
	uid := create(t, svcCtx, 2, 2)

	assert.ErrorIs(t, paint(t, svcCtx, uid, "mountain", 2, 0), painting.ErrOutOfBounds)

	// Nothing is pending any more, so At only looks.
	resp, err := NewAtLogic(ctx, svcCtx).At(&types.AtRequest{PaintingUid: uid, X: 2, Y: 0})
	require.NoError(t, err)
	assert.Equal(t, "canvas", resp.Kind)
	assert.False(t, resp.Painted)

	s, err := svcCtx.Store.Load(ctx, message.PaintingUid(uid))
	require.NoError(t, err)
	assert.Zero(t, s.Len())
}

func TestSelectReportsPending(t *testing.T) {
	svcCtx, _ := newServiceContext()
	uid := create(t, svcCtx, 2, 2)

	resp, err := NewSelectLogic(context.Background(), svcCtx).Select(&types.SelectRequest{PaintingUid: uid, Kind: "Cloud"})
	require.NoError(t, err)
	assert.Equal(t, "cloud", resp.Pending)

	_, err = NewSelectLogic(context.Background(), svcCtx).Select(&types.SelectRequest{PaintingUid: uid, Kind: "lake"})
	assert.ErrorIs(t, err, painting.ErrUnknownKind)
}

func TestLocate(t *testing.T) {
	svcCtx, _ := newServiceContext()
	uid := create(t, svcCtx, 3, 3)
	require.NoError(t, paint(t, svcCtx, uid, "tree", 2, 2))

	for _, tt := range []struct {
		x, y int
		want string
	}{
		{2, 2, "tree"},
		{0, 0, "canvas"},
		{-4, 9, "canvas"},
	} {
		resp, err := NewLocateLogic(context.Background(), svcCtx).Locate(&types.LocateRequest{PaintingUid: uid, X: tt.x, Y: tt.y})
		require.NoError(t, err)
		assert.Equal(t, tt.want, resp.Kind)
	}
}

func TestInvalidPaintingUid(t *testing.T) {
	svcCtx, _ := newServiceContext()

	_, err := NewValueLogic(context.Background(), svcCtx).Value(&types.PaintingRequest{PaintingUid: "nope"})
	assert.ErrorIs(t, err, ErrInvalidPaintingUid)

	_, err = NewValueLogic(context.Background(), svcCtx).Value(&types.PaintingRequest{PaintingUid: string(message.NewPaintingUid())})
	assert.ErrorIs(t, err, svc.ErrPaintingNotFound)
}

func TestHints(t *testing.T) {
	svcCtx, _ := newServiceContext()
	ctx := context.Background()
	uid := create(t, svcCtx, 3, 3)
	require.NoError(t, paint(t, svcCtx, uid, "river", 0, 0))
	require.NoError(t, paint(t, svcCtx, uid, "river", 2, 0))

	posted, err := NewPostHintLogic(ctx, svcCtx).PostHint(&types.PostHintRequest{PaintingUid: uid, Kind: "river"})
	require.NoError(t, err)
	assert.Equal(t, 2, posted.Step)
	assert.Equal(t, 7, posted.TotalCalNumber)

	hint, err := NewInquireHintLogic(ctx, svcCtx).InquireHint(&types.InquireHintRequest{PaintingUid: uid, Kind: "river"})
	require.NoError(t, err)
	assert.True(t, hint.Found)
	assert.Equal(t, 9, hint.Gain)
	assert.Equal(t, []types.Point{{X: 1, Y: 0}, {X: 1, Y: 1}}, hint.Points)
	assert.Equal(t, 7, hint.CalculatedNumber)

	// A new placement moves the painting to a step nobody assessed yet.
	require.NoError(t, paint(t, svcCtx, uid, "tree", 2, 2))
	hint, err = NewInquireHintLogic(ctx, svcCtx).InquireHint(&types.InquireHintRequest{PaintingUid: uid, Kind: "river"})
	require.NoError(t, err)
	assert.False(t, hint.Found)
	assert.Empty(t, hint.Points)
}

func TestConcurrentPlacementsKeepLedgerConsistent(t *testing.T) {
	svcCtx, _ := newServiceContext()
	uid := create(t, svcCtx, 4, 4)

	var wg sync.WaitGroup
	for x := range 4 {
		for y := range 4 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ctx := context.Background()
				_ = svcCtx.Lock(message.PaintingUid(uid)).Do(func() error {
					s, err := svcCtx.Store.Load(ctx, message.PaintingUid(uid))
					if err != nil {
						return err
					}
					_, _ = s.Select(painting.Tree).At(x, y)
					return svcCtx.Store.Save(ctx, message.PaintingUid(uid), s)
				})
			}()
		}
	}
	wg.Wait()

	s, err := svcCtx.Store.Load(context.Background(), message.PaintingUid(uid))
	require.NoError(t, err)
	assert.Equal(t, 16, s.Len())
	assert.Equal(t, 10, s.Value())
}
