package paintrecord

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PaintingEndRecord struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UpdateAt time.Time          `bson:"updateAt,omitempty" json:"updateAt,omitempty"`
	CreateAt time.Time          `bson:"createAt,omitempty" json:"createAt,omitempty"`

	PaintingUid string `bson:"paintingUid" json:"paintingUid"`
	Items       int    `bson:"items" json:"items"`
	Value       int    `bson:"value" json:"value"`
	Render      string `bson:"render" json:"render"`
}
