package audio

import (
	"os/exec"
	"strconv"
)

// DetectBackend searches PATH for a raw PCM player
// Priority: pacat > pw-cat > aplay > play (sox)
func DetectBackend(rate int) (*BackendConfig, error) {
	return detectBackend(rate, exec.LookPath)
}

func detectBackend(rate int, lookPath func(string) (string, error)) (*BackendConfig, error) {
	r := strconv.Itoa(rate)

	if path, err := lookPath("pacat"); err == nil {
		return &BackendConfig{
			Type: BackendPulse,
			Name: "pacat",
			Path: path,
			Args: []string{
				"--raw",
				"--format=s16le",
				"--rate=" + r,
				"--channels=2",
				"--latency-msec=50",
				"--playback",
			},
		}, nil
	}

	if path, err := lookPath("pw-cat"); err == nil {
		return &BackendConfig{
			Type: BackendPipeWire,
			Name: "pw-cat",
			Path: path,
			Args: []string{
				"--playback",
				"--format=s16",
				"--rate=" + r,
				"--channels=2",
				"--latency=50ms",
				"-",
			},
		}, nil
	}

	if path, err := lookPath("aplay"); err == nil {
		return &BackendConfig{
			Type: BackendALSA,
			Name: "aplay",
			Path: path,
			Args: []string{"-t", "raw", "-f", "S16_LE", "-r", r, "-c", "2", "-q"},
		}, nil
	}

	if path, err := lookPath("play"); err == nil {
		return &BackendConfig{
			Type: BackendSoX,
			Name: "sox",
			Path: path,
			Args: []string{"-t", "raw", "-e", "signed", "-b", "16", "-c", "2", "-r", r, "-", "-d", "-q"},
		}, nil
	}

	return nil, ErrNoAudioBackend
}
