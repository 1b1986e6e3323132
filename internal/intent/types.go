package intent

// Record is one intent entry of the catalog: a unique tag, training-time
// example patterns and serving-time reply templates.
type Record struct {
	Tag       string   `json:"tag"`
	Patterns  []string `json:"patterns"`
	Responses []string `json:"responses"`
}

// file is the on-disk shape of intents.json.
type file struct {
	Intents []Record `json:"intents"`
}
