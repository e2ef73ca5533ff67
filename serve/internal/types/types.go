package types

type PaintingRequest struct {
	PaintingUid string `path:"uid"`
}

type CreatePaintingRequest struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type PaintingResponse struct {
	PaintingUid string `json:"paintingUid"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Items       int    `json:"items"`
	Pending     string `json:"pending,omitempty"`
}

type SelectRequest struct {
	PaintingUid string `path:"uid"`
	Kind        string `json:"kind"`
}

type AtRequest struct {
	PaintingUid string `path:"uid"`
	X           int    `json:"x"`
	Y           int    `json:"y"`
}

type AtResponse struct {
	Kind    string `json:"kind"`
	Painted bool   `json:"painted"`
}

type LocateRequest struct {
	PaintingUid string `path:"uid"`
	X           int    `form:"x"`
	Y           int    `form:"y"`
}

type LocateResponse struct {
	Kind string `json:"kind"`
}

type Contribution struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Kind  string `json:"kind"`
	Score int    `json:"score"`
}

type ValueResponse struct {
	Value         int            `json:"value"`
	TreeBonus     int            `json:"treeBonus"`
	Contributions []Contribution `json:"contributions"`
}

type RenderResponse struct {
	Rows []string `json:"rows"`
	Text string   `json:"text"`
}

type PostHintRequest struct {
	PaintingUid string `path:"uid"`
	Kind        string `json:"kind"`
}

type PostHintResponse struct {
	Step           int `json:"step"`
	TotalCalNumber int `json:"totalCalNumber"`
}

type InquireHintRequest struct {
	PaintingUid string `path:"uid"`
	Kind        string `form:"kind"`
}

type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type InquireHintResponse struct {
	Step             int     `json:"step"`
	Found            bool    `json:"found"`
	Gain             int     `json:"gain"`
	Points           []Point `json:"points"`
	CalculatedNumber int     `json:"calculatedNumber"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
