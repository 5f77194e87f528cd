package gfx

import "log/slog"

// Loader turns a path into a texture.
type Loader func(path string) (*Texture, error)

// Library caches textures by path so every entity referencing the same sheet
// shares one decoded copy.
type Library struct {
	load     Loader
	textures map[string]*Texture
}

// NewLibrary creates a library backed by load. A nil load uses LoadTexture.
func NewLibrary(load Loader) *Library {
	if load == nil {
		load = LoadTexture
	}
	return &Library{
		load:     load,
		textures: make(map[string]*Texture),
	}
}

// Load returns the cached texture for path, loading it on first use.
// Failed loads are not cached.
func (l *Library) Load(path string) (*Texture, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	if tex, ok := l.textures[path]; ok {
		return tex, nil
	}
	tex, err := l.load(path)
	if err != nil {
		return nil, err
	}
	l.textures[path] = tex
	slog.Info("texture loaded", "path", path, "width", tex.Width(), "height", tex.Height())
	return tex, nil
}

// Len returns the number of cached textures.
func (l *Library) Len() int {
	return len(l.textures)
}
