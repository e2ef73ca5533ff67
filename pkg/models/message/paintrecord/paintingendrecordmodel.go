package paintrecord

import "github.com/zeromicro/go-zero/core/stores/mon"

var _ PaintingEndRecordModel = (*customPaintingEndRecordModel)(nil)

type (
	// PaintingEndRecordModel is an interface to be customized, add more methods here,
	// and implement the added methods in customPaintingEndRecordModel.
	PaintingEndRecordModel interface {
		paintingEndRecordModel
	}

	customPaintingEndRecordModel struct {
		*defaultPaintingEndRecordModel
	}
)

// NewPaintingEndRecordModel returns a model for the mongo.
func NewPaintingEndRecordModel(url, db, collection string) PaintingEndRecordModel {
	conn := mon.MustNewModel(url, db, collection)
	return &customPaintingEndRecordModel{
		defaultPaintingEndRecordModel: newDefaultPaintingEndRecordModel(conn),
	}
}
