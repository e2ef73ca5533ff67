package paintrecord

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PaintingStartRecord struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UpdateAt time.Time          `bson:"updateAt,omitempty" json:"updateAt,omitempty"`
	CreateAt time.Time          `bson:"createAt,omitempty" json:"createAt,omitempty"`

	PaintingUid string `bson:"paintingUid" json:"paintingUid"`
	Width       int    `bson:"width" json:"width"`
	Height      int    `bson:"height" json:"height"`
}
