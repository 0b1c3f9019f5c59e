package game

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const sampleRate = 44100

type SoundData struct {
	raw []byte
}

type AudioManager struct {
	ctx    *audio.Context
	paddle *SoundData
	wall   *SoundData
	score  *SoundData
}

var (
	audioOnce sync.Once
	audioCtx  *audio.Context
)

func getAudioContext() *audio.Context {
	// Audio is off unless PONG_ENABLE_AUDIO=1; PONG_DISABLE_AUDIO=1 always wins.
	if os.Getenv("PONG_DISABLE_AUDIO") == "1" {
		return nil
	}
	if os.Getenv("PONG_ENABLE_AUDIO") != "1" {
		return nil
	}
	audioOnce.Do(func() {
		audioCtx = audio.NewContext(sampleRate)
	})
	return audioCtx
}

func NewAudioManager(soundsDir string) *AudioManager {
	if soundsDir == "" {
		soundsDir = "assets/sounds"
	}
	ctx := getAudioContext()
	am := &AudioManager{ctx: ctx}

	// Missing files fall back to a synthesized beep
	am.paddle = loadOrBeep(soundsDir, "paddle.wav", 50, 880)
	am.wall = loadOrBeep(soundsDir, "wall.wav", 40, 440)
	am.score = loadOrBeep(soundsDir, "score.wav", 300, 220)
	return am
}

func loadOrBeep(dir, file string, durationMs int, freq float64) *SoundData {
	if sd, err := loadSoundData(dir, file); err == nil {
		return sd
	}
	return &SoundData{raw: synthBeepWAV(sampleRate, durationMs, freq)}
}

func loadSoundData(dir, file string) (*SoundData, error) {
	b, err := os.ReadFile(filepath.Join(dir, file))
	if err != nil {
		return nil, err
	}
	if len(b) == 0 {
		return nil, fmt.Errorf("%s: empty sound file", file)
	}
	return &SoundData{raw: b}, nil
}

func (am *AudioManager) play(sd *SoundData) {
	if am == nil || am.ctx == nil || sd == nil || len(sd.raw) == 0 {
		return
	}
	// Decode from bytes each time to allow overlapping plays
	stream, err := wav.DecodeWithSampleRate(am.ctx.SampleRate(), bytes.NewReader(sd.raw))
	if err != nil {
		return
	}
	p, err := am.ctx.NewPlayer(stream)
	if err != nil {
		return
	}
	p.Play()
}

func (am *AudioManager) PlayPaddle() { am.play(am.paddle) }
func (am *AudioManager) PlayWall()   { am.play(am.wall) }
func (am *AudioManager) PlayScore()  { am.play(am.score) }

// synthBeepWAV returns a 16-bit PCM mono WAV of a sine beep that fades
// out linearly so it ends without a click.
func synthBeepWAV(rate int, durationMs int, freq float64) []byte {
	const headerSize = 44
	n := rate * durationMs / 1000
	dataSize := n * 2
	buf := make([]byte, headerSize+dataSize)
	le := binary.LittleEndian

	copy(buf[0:4], "RIFF")
	le.PutUint32(buf[4:8], uint32(headerSize+dataSize-8))
	copy(buf[8:12], "WAVE")
	copy(buf[12:16], "fmt ")
	le.PutUint32(buf[16:20], 16)           // fmt chunk size
	le.PutUint16(buf[20:22], 1)            // PCM
	le.PutUint16(buf[22:24], 1)            // mono
	le.PutUint32(buf[24:28], uint32(rate)) // sample rate
	le.PutUint32(buf[28:32], uint32(rate*2))
	le.PutUint16(buf[32:34], 2)  // block align
	le.PutUint16(buf[34:36], 16) // bits per sample
	copy(buf[36:40], "data")
	le.PutUint32(buf[40:44], uint32(dataSize))

	const amp = 0.25
	for i := 0; i < n; i++ {
		env := 1 - float64(i)/float64(n)
		v := math.Sin(2*math.Pi*freq*float64(i)/float64(rate)) * amp * env
		le.PutUint16(buf[headerSize+i*2:], uint16(int16(v*math.MaxInt16)))
	}
	return buf
}
