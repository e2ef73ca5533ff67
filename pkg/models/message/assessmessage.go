package message

import (
	"github.com/HuXin0817/painting/pkg/models/painting"
	"github.com/bytedance/sonic"
)

// AssessMessageKey names the result set of one hint request.
type AssessMessageKey struct {
	PaintingUid PaintingUid   `json:"paintingUid"`
	Step        int           `json:"step"`
	Kind        painting.Kind `json:"kind"`
}

func (a AssessMessageKey) String() string {
	str, _ := sonic.MarshalString(a)
	return str
}

type AssessMessageValue struct {
	Point painting.Point `json:"point"`
	Gain  int            `json:"gain"`
}

func NewAssessMessageValue(s string) (newAssessMessageValue AssessMessageValue, err error) {
	err = sonic.UnmarshalString(s, &newAssessMessageValue)
	return
}

func (a AssessMessageValue) String() string {
	str, _ := sonic.MarshalString(a)
	return str
}

type HintHasBeenAssessedKey struct {
	AssessMessageKey
	Point painting.Point `json:"point"`
}

func (h HintHasBeenAssessedKey) String() string {
	str, _ := sonic.MarshalString(h)
	return str
}

// BestAssessment picks the highest gain among encoded set members. Members
// that do not decode are skipped.
func BestAssessment(members []string) (best AssessMessageValue, points []painting.Point, ok bool) {
	for _, m := range members {
		v, err := NewAssessMessageValue(m)
		if err != nil {
			continue
		}

		switch {
		case !ok || v.Gain > best.Gain:
			best, points, ok = v, []painting.Point{v.Point}, true
		case v.Gain == best.Gain:
			points = append(points, v.Point)
		}
	}
	return
}
