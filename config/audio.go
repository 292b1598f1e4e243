package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundEnemyDestroyed
	SoundPlayerHit
	SoundRunWon
	SoundRunLost
)

// Tone is a generated sine beep.
type Tone struct {
	FrequencyHz float64
	DurationMs  int
}

// AudioConfig holds the terminal frontend's sound settings
type AudioConfig struct {
	SampleRate int
	BufferMs   int
	Tones      map[SoundID]Tone
}

func defaultAudio() AudioConfig {
	return AudioConfig{
		SampleRate: 44100,
		BufferMs:   100,
		Tones: map[SoundID]Tone{
			SoundEnemyDestroyed: {FrequencyHz: 880, DurationMs: 50},
			SoundPlayerHit:      {FrequencyHz: 220, DurationMs: 80},
			SoundRunWon:         {FrequencyHz: 1320, DurationMs: 300},
			SoundRunLost:        {FrequencyHz: 110, DurationMs: 400},
		},
	}
}
