package svc

import (
	"context"
	"time"

	"github.com/HuXin0817/painting/pkg/models/message"
	"github.com/HuXin0817/painting/pkg/models/message/paintrecord"
	"github.com/HuXin0817/painting/pkg/models/painting"
	"github.com/HuXin0817/painting/pkg/models/pusher"
	"github.com/zeromicro/go-zero/core/logx"
)

const (
	PaintingStartCollectionName = "painting_start"
	PlacementCollectionName     = "placement"
	PaintingEndCollectionName   = "painting_end"

	recordTimeout = 10 * time.Second
)

// Recorder keeps a history of paintings. Recording never fails a request.
type Recorder interface {
	RecordStart(uid message.PaintingUid, width, height int)
	RecordPlacement(uid message.PaintingUid, step int, kind painting.Kind, x, y int, err error)
	RecordEnd(uid message.PaintingUid, s *painting.Surface)
	Stop()
}

type insert func(ctx context.Context) error

// MongoRecorder batches record inserts through a pusher.
type MongoRecorder struct {
	startModel     paintrecord.PaintingStartRecordModel
	placementModel paintrecord.PlacementRecordModel
	endModel       paintrecord.PaintingEndRecordModel
	pusher         *pusher.Pusher[insert]
}

func NewMongoRecorder(url, db string) *MongoRecorder {
	r := &MongoRecorder{
		startModel:     paintrecord.NewPaintingStartRecordModel(url, db, PaintingStartCollectionName),
		placementModel: paintrecord.NewPlacementRecordModel(url, db, PlacementCollectionName),
		endModel:       paintrecord.NewPaintingEndRecordModel(url, db, PaintingEndCollectionName),
	}

	r.pusher = pusher.NewPusher(pusher.WithPushLogic(func(inserts ...insert) error {
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()

		for _, in := range inserts {
			if err := in(ctx); err != nil {
				logx.Errorf("record painting: %v", err)
			}
		}
		return nil
	}))
	r.pusher.Start()

	return r
}

func (r *MongoRecorder) RecordStart(uid message.PaintingUid, width, height int) {
	record := &paintrecord.PaintingStartRecord{
		PaintingUid: string(uid),
		Width:       width,
		Height:      height,
	}
	r.pusher.AddMessages(func(ctx context.Context) error {
		return r.startModel.Insert(ctx, record)
	})
}

func (r *MongoRecorder) RecordPlacement(uid message.PaintingUid, step int, kind painting.Kind, x, y int, err error) {
	record := &paintrecord.PlacementRecord{
		PaintingUid: string(uid),
		Step:        step,
		X:           x,
		Y:           y,
		Kind:        kind.String(),
	}
	if err != nil {
		record.Error = err.Error()
	}
	r.pusher.AddMessages(func(ctx context.Context) error {
		return r.placementModel.Insert(ctx, record)
	})
}

func (r *MongoRecorder) RecordEnd(uid message.PaintingUid, s *painting.Surface) {
	record := &paintrecord.PaintingEndRecord{
		PaintingUid: string(uid),
		Items:       s.Len(),
		Value:       s.Value(),
		Render:      s.Render(),
	}
	r.pusher.AddMessages(func(ctx context.Context) error {
		return r.endModel.Insert(ctx, record)
	})
}

func (r *MongoRecorder) Stop() {
	r.pusher.Stop()
}

// LogRecorder writes the history to the service log instead.
type LogRecorder struct{}

func (LogRecorder) RecordStart(uid message.PaintingUid, width, height int) {
	logx.Infof("painting %s started, %dx%d", uid, width, height)
}

func (LogRecorder) RecordPlacement(uid message.PaintingUid, step int, kind painting.Kind, x, y int, err error) {
	if err != nil {
		logx.Infof("painting %s step %d: %s at (%d, %d) failed: %v", uid, step, kind, x, y, err)
		return
	}
	logx.Infof("painting %s step %d: %s at (%d, %d)", uid, step, kind, x, y)
}

func (LogRecorder) RecordEnd(uid message.PaintingUid, s *painting.Surface) {
	logx.Infof("painting %s finished with %d items, value %d", uid, s.Len(), s.Value())
}

func (LogRecorder) Stop() {}
