package volume

import volumego "github.com/itchyny/volume-go"

// systemMixer drives the real host audio endpoint through volume-go.
type systemMixer struct{}

func (systemMixer) Get() (int, error) {
	return volumego.GetVolume()
}

func (systemMixer) Set(level int) error {
	return volumego.SetVolume(level)
}

func (systemMixer) Mute() error {
	return volumego.Mute()
}

func (systemMixer) Unmute() error {
	return volumego.Unmute()
}
