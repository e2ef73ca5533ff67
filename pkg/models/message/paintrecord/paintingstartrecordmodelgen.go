package paintrecord

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/stores/mon"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type paintingStartRecordModel interface {
	Insert(ctx context.Context, data *PaintingStartRecord) error
	FindOne(ctx context.Context, id string) (*PaintingStartRecord, error)
	Update(ctx context.Context, data *PaintingStartRecord) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type defaultPaintingStartRecordModel struct {
	conn *mon.Model
}

func newDefaultPaintingStartRecordModel(conn *mon.Model) *defaultPaintingStartRecordModel {
	return &defaultPaintingStartRecordModel{conn: conn}
}

func (m *defaultPaintingStartRecordModel) Insert(ctx context.Context, data *PaintingStartRecord) error {
	if data.ID.IsZero() {
		data.ID = primitive.NewObjectID()
		data.CreateAt = time.Now()
		data.UpdateAt = time.Now()
	}

	_, err := m.conn.InsertOne(ctx, data)
	return err
}

func (m *defaultPaintingStartRecordModel) FindOne(ctx context.Context, id string) (*PaintingStartRecord, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidObjectId
	}

	var data PaintingStartRecord

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

func (m *defaultPaintingStartRecordModel) Update(ctx context.Context, data *PaintingStartRecord) (*mongo.UpdateResult, error) {
	data.UpdateAt = time.Now()

	res, err := m.conn.UpdateOne(ctx, bson.M{"_id": data.ID}, bson.M{"$set": data})
	return res, err
}

func (m *defaultPaintingStartRecordModel) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, ErrInvalidObjectId
	}

	res, err := m.conn.DeleteOne(ctx, bson.M{"_id": oid})
	return res, err
}
