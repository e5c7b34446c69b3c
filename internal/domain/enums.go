package domain

// Mode selects both the bias category a round trains on and the text
// generation route used for it.
type Mode string

const (
	ModeGPT4Gender   Mode = "gpt4-gender"
	ModeLlama3Sexual Mode = "llama3-sexual"
	ModeGeminiAge    Mode = "gemini-age"
)

// BiasType is the bias category recorded on every history item.
type BiasType string

const (
	BiasTypeGender BiasType = "Gender"
	BiasTypeSexual BiasType = "Sexual"
	BiasTypeAge    BiasType = "Age"
)

// modeBiasTypes is the exhaustive Mode -> BiasType table. Every Mode constant
// must have an entry; enums_test.go checks this.
var modeBiasTypes = map[Mode]BiasType{
	ModeGPT4Gender:   BiasTypeGender,
	ModeLlama3Sexual: BiasTypeSexual,
	ModeGeminiAge:    BiasTypeAge,
}

// AllModes lists the recognized modes in a stable order.
func AllModes() []Mode {
	return []Mode{ModeGPT4Gender, ModeLlama3Sexual, ModeGeminiAge}
}

func (m Mode) String() string { return string(m) }

func (m Mode) IsValid() bool {
	_, ok := modeBiasTypes[m]
	return ok
}

// BiasType returns the bias category for m. Unknown modes return "" and
// should have been rejected by IsValid before reaching this point.
func (m Mode) BiasType() BiasType {
	return modeBiasTypes[m]
}

func (b BiasType) String() string { return string(b) }
