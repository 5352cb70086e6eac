package webresponse

type ExerciseResponse struct {
	ID          string  `json:"_id"`
	Username    string  `json:"username"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Duration    float64 `json:"duration"`
}

type LogItemResponse struct {
	Description string  `json:"description"`
	Duration    float64 `json:"duration"`
	Date        string  `json:"date"`
}

// LogResponse echoes From and To only when the caller supplied them.
type LogResponse struct {
	ID       string            `json:"_id"`
	Username string            `json:"username"`
	From     string            `json:"from,omitempty"`
	To       string            `json:"to,omitempty"`
	Count    int               `json:"count"`
	Log      []LogItemResponse `json:"log"`
}
