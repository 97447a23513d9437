// This file is part of emucore.
//
// emucore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// emucore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with emucore.  If not, see <https://www.gnu.org/licenses/>.

package emulation

import (
	"encoding/gob"
	"io"
	"sync"

	"github.com/emucore/emucore/curated"
)

// Error patterns returned by ChunkFile.
const (
	ChunkMissing = "chunk file: missing chunk (%s)"
	ChunkDecode  = "chunk file: %v"
)

// SessionFile is the persistence container used by Save() and Load(). A
// subsystem that cannot restore itself from the file vetoes the reload with
// SetCanReload(false), in which case the session falls back to a Reset.
type SessionFile interface {
	WriteChunk(tag string, data []byte) error
	ReadChunk(tag string) ([]byte, error)
	SetCanReload(bool)
	CanReload() bool
}

// ChunkFile is a SessionFile held in memory. It can be written to and read
// from a stream.
type ChunkFile struct {
	crit      sync.Mutex
	chunks    map[string][]byte
	canReload bool
}

// NewChunkFile is the preferred method of initialisation for the ChunkFile
// type.
func NewChunkFile() *ChunkFile {
	return &ChunkFile{
		chunks:    make(map[string][]byte),
		canReload: true,
	}
}

// WriteChunk implements the SessionFile interface.
func (f *ChunkFile) WriteChunk(tag string, data []byte) error {
	f.crit.Lock()
	defer f.crit.Unlock()
	c := make([]byte, len(data))
	copy(c, data)
	f.chunks[tag] = c
	return nil
}

// ReadChunk implements the SessionFile interface.
func (f *ChunkFile) ReadChunk(tag string) ([]byte, error) {
	f.crit.Lock()
	defer f.crit.Unlock()
	c, ok := f.chunks[tag]
	if !ok {
		return nil, curated.Errorf(ChunkMissing, tag)
	}
	return c, nil
}

// SetCanReload implements the SessionFile interface.
func (f *ChunkFile) SetCanReload(v bool) {
	f.crit.Lock()
	defer f.crit.Unlock()
	f.canReload = v
}

// CanReload implements the SessionFile interface.
func (f *ChunkFile) CanReload() bool {
	f.crit.Lock()
	defer f.crit.Unlock()
	return f.canReload
}

// Write writes the chunks to the io.Writer.
func (f *ChunkFile) Write(w io.Writer) error {
	f.crit.Lock()
	defer f.crit.Unlock()
	if err := gob.NewEncoder(w).Encode(f.chunks); err != nil {
		return curated.Errorf(ChunkDecode, err)
	}
	return nil
}

// Read replaces the chunks with those read from the io.Reader.
func (f *ChunkFile) Read(r io.Reader) error {
	chunks := make(map[string][]byte)
	if err := gob.NewDecoder(r).Decode(&chunks); err != nil {
		return curated.Errorf(ChunkDecode, err)
	}
	f.crit.Lock()
	defer f.crit.Unlock()
	f.chunks = chunks
	f.canReload = true
	return nil
}
