package types

// ResultEnvelope is the response wrapper exchanged by the enveloped
// REST backend: a success flag, a human-readable message, and the
// varieties the call produced. A fresh envelope is built per call.
type ResultEnvelope struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Teas    []TeaVariety `json:"teas"`
}

// OKEnvelope builds a successful envelope carrying the given varieties.
func OKEnvelope(teas ...TeaVariety) *ResultEnvelope {
	return &ResultEnvelope{Success: true, Teas: teas}
}

// FailEnvelope builds a failed envelope with a descriptive message.
func FailEnvelope(message string) *ResultEnvelope {
	return &ResultEnvelope{Success: false, Message: message}
}
