package paintrecord

import "github.com/zeromicro/go-zero/core/stores/mon"

var _ PlacementRecordModel = (*customPlacementRecordModel)(nil)

type (
	// PlacementRecordModel is an interface to be customized, add more methods here,
	// and implement the added methods in customPlacementRecordModel.
	PlacementRecordModel interface {
		placementRecordModel
	}

	customPlacementRecordModel struct {
		*defaultPlacementRecordModel
	}
)

// NewPlacementRecordModel returns a model for the mongo.
func NewPlacementRecordModel(url, db, collection string) PlacementRecordModel {
	conn := mon.MustNewModel(url, db, collection)
	return &customPlacementRecordModel{
		defaultPlacementRecordModel: newDefaultPlacementRecordModel(conn),
	}
}
