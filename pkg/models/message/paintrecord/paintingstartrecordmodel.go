package paintrecord

import "github.com/zeromicro/go-zero/core/stores/mon"

var _ PaintingStartRecordModel = (*customPaintingStartRecordModel)(nil)

type (
	// PaintingStartRecordModel is an interface to be customized, add more methods here,
	// and implement the added methods in customPaintingStartRecordModel.
	PaintingStartRecordModel interface {
		paintingStartRecordModel
	}

	customPaintingStartRecordModel struct {
		*defaultPaintingStartRecordModel
	}
)

// NewPaintingStartRecordModel returns a model for the mongo.
func NewPaintingStartRecordModel(url, db, collection string) PaintingStartRecordModel {
	conn := mon.MustNewModel(url, db, collection)
	return &customPaintingStartRecordModel{
		defaultPaintingStartRecordModel: newDefaultPaintingStartRecordModel(conn),
	}
}
