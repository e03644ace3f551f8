package assets

import (
	"dr-fingers/internal/config"
	"dr-fingers/internal/defs"
	"dr-fingers/internal/sound"
	"dr-fingers/pkg/render"
	"dr-fingers/pkg/tilemap"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gopxl/beep"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// Manager загружает и хранит всё, что нужно игре после экрана загрузки.
type Manager struct {
	LevelPath string // Путь к уровню на диске; пусто - встроенный уровень

	Font      font.Face
	TitleFont font.Face
	Tiles     *render.Atlas
	Player    *render.Atlas
	Level     *tilemap.Level
	Defs      *defs.GameDefinitions
	JumpPCM   []byte // Готовый звук прыжка

	loaded bool
}

// NewManager создает новый экземпляр Manager.
func NewManager(levelPath string) *Manager {
	return &Manager{LevelPath: levelPath}
}

// Loaded сообщает, завершилась ли загрузка
func (m *Manager) Loaded() bool {
	return m.loaded
}

// Load загружает шрифты, атласы, уровень, определения и звуки.
func (m *Manager) Load() error {
	if m.loaded {
		return nil
	}
	data := DataFS()

	gameDefs, err := defs.LoadGameDefinitions(data, DefinitionsPath)
	if err != nil {
		return err
	}
	m.Defs = gameDefs

	if m.Level, err = m.loadLevel(data); err != nil {
		return err
	}

	tt, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %w", err)
	}
	if m.Font, err = newFace(tt, config.FontSize); err != nil {
		return err
	}
	if m.TitleFont, err = newFace(tt, config.TitleFontSize); err != nil {
		return err
	}

	m.Tiles = buildTileAtlas()
	m.Player = buildPlayerAtlas()
	log.Printf("Built atlases: %d tile sprites, %d player frames", m.Tiles.Len(), m.Player.Len())

	chirp := sound.JumpChirp(beep.SampleRate(config.AudioSampleRate), config.JumpChirpVolume,
		time.Duration(config.JumpChirpSeconds*float64(time.Second)))
	if m.JumpPCM, err = sound.RenderPCM(chirp); err != nil {
		return fmt.Errorf("failed to render jump sound: %w", err)
	}

	m.loaded = true
	return nil
}

// loadLevel берёт уровень с диска, если путь задан, иначе встроенный
func (m *Manager) loadLevel(data fs.FS) (*tilemap.Level, error) {
	if m.LevelPath == "" {
		return tilemap.Load(data, DefaultLevelPath)
	}
	dir, name := filepath.Split(m.LevelPath)
	if dir == "" {
		dir = "."
	}
	if filepath.Ext(name) != tilemap.Extension {
		log.Printf("WARNING: level file %s does not have %s extension", m.LevelPath, tilemap.Extension)
	}
	return tilemap.Load(os.DirFS(dir), name)
}

func newFace(tt *opentype.Font, size float64) (font.Face, error) {
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	return face, nil
}

// Cleanup освобождает шрифты
func (m *Manager) Cleanup() {
	for _, face := range []font.Face{m.Font, m.TitleFont} {
		if face != nil {
			face.Close()
		}
	}
	m.Font, m.TitleFont = nil, nil
	m.loaded = false
	log.Println("Assets unloaded.")
}
