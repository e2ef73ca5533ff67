package message

import "github.com/google/uuid"

type PaintingUid string

func NewPaintingUid() PaintingUid {
	return PaintingUid(uuid.New().String())
}

func (p PaintingUid) Valid() bool {
	_, err := uuid.Parse(string(p))
	return err == nil
}

func (p PaintingUid) StateKey() string {
	return "Painting-" + string(p)
}

func (p PaintingUid) LockName() string {
	return string(p) + "-Lock"
}
