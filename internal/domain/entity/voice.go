package entity

// VoiceSnapshot is the read model of the voice sentry.
type VoiceSnapshot struct {
	Listening     bool   `json:"listening"`
	Transcription string `json:"transcription"`
}
