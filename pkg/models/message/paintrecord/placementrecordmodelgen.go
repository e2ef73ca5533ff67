package paintrecord

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/stores/mon"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type placementRecordModel interface {
	Insert(ctx context.Context, data *PlacementRecord) error
	FindOne(ctx context.Context, id string) (*PlacementRecord, error)
	Update(ctx context.Context, data *PlacementRecord) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type defaultPlacementRecordModel struct {
	conn *mon.Model
}

func newDefaultPlacementRecordModel(conn *mon.Model) *defaultPlacementRecordModel {
	return &defaultPlacementRecordModel{conn: conn}
}

func (m *defaultPlacementRecordModel) Insert(ctx context.Context, data *PlacementRecord) error {
	if data.ID.IsZero() {
		data.ID = primitive.NewObjectID()
		data.CreateAt = time.Now()
		data.UpdateAt = time.Now()
	}

	_, err := m.conn.InsertOne(ctx, data)
	return err
}

func (m *defaultPlacementRecordModel) FindOne(ctx context.Context, id string) (*PlacementRecord, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidObjectId
	}

	var data PlacementRecord

	err = m.conn.FindOne(ctx, &data, bson.M{"_id": oid})
	switch err {
	case nil:
		return &data, nil
	case mon.ErrNotFound:
		return nil, ErrNotFound
	default:
		return nil, err
	}
}

func (m *defaultPlacementRecordModel) Update(ctx context.Context, data *PlacementRecord) (*mongo.UpdateResult, error) {
	data.UpdateAt = time.Now()

	res, err := m.conn.UpdateOne(ctx, bson.M{"_id": data.ID}, bson.M{"$set": data})
	return res, err
}

func (m *defaultPlacementRecordModel) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, ErrInvalidObjectId
	}

	res, err := m.conn.DeleteOne(ctx, bson.M{"_id": oid})
	return res, err
}
