package paintrecord

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlacementRecord is one At call that carried a pending kind. Error is empty
// when the kind was painted.
type PlacementRecord struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UpdateAt time.Time          `bson:"updateAt,omitempty" json:"updateAt,omitempty"`
	CreateAt time.Time          `bson:"createAt,omitempty" json:"createAt,omitempty"`

	PaintingUid string `bson:"paintingUid" json:"paintingUid"`
	Step        int    `bson:"step" json:"step"`
	X           int    `bson:"x" json:"x"`
	Y           int    `bson:"y" json:"y"`
	Kind        string `bson:"kind" json:"kind"`
	Error       string `bson:"error,omitempty" json:"error,omitempty"`
}
