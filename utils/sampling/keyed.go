package sampling

import (
	"sync"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
)

const keySize = 32

// KeyedSource is a Source generating its stream *deterministically* from a
// key using the hash function blake2b, so that independent consumers holding
// the same key observe the same sequence of draws. The stream still honors
// the uniformity contract of Source, which makes KeyedSource suitable for
// reproducible tests and replay.
// WARNING: a KeyedSource initialised with key=nil is INSECURE and must only
// be used for testing.
// WARNING: KeyedSource should NOT be read by multiple goroutines. It does not
// make sense to do so as the resulting sequence will not be deterministic for
// a given key.
type KeyedSource struct {
	mutex sync.Mutex
	key   []byte
	xof   blake2b.XOF
}

// NewKeyedSource creates a new instance of KeyedSource.
// Accepts an optional key, else set key=nil which is treated as key=[]byte{}.
func NewKeyedSource(key []byte) (*KeyedSource, error) {
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	if err != nil {
		return nil, err
	}
	k := make([]byte, len(key))
	copy(k, key)
	return &KeyedSource{key: k, xof: xof}, nil
}

// Key returns a copy of the key used to seed the source. This value can be
// used with NewKeyedSource to instantiate a new source producing the same
// stream of draws.
func (s *KeyedSource) Key() (key []byte) {
	key = make([]byte, len(s.key))
	copy(key, s.key)
	return
}

// Read reads deterministic bytes from the keyed stream into p.
func (s *KeyedSource) Read(p []byte) (n int, err error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.xof.Read(p)
}

// Int32n returns a uniformly distributed int32 in [low, high).
func (s *KeyedSource) Int32n(low, high int32) int32 {
	return Int32n(s, low, high)
}

// Int64n returns a uniformly distributed int64 in [low, high).
func (s *KeyedSource) Int64n(low, high int64) int64 {
	return Int64n(s, low, high)
}

// Reset rewinds the source to its initial state: the stream of draws after a
// Reset replays from the beginning.
func (s *KeyedSource) Reset() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.xof.Reset()
}

// KeyFromSeed derives a KeyedSource key from arbitrary seed material using
// blake3.
func KeyFromSeed(seed []byte) []byte {
	hasher := blake3.New()
	hasher.Write(seed)
	sum := hasher.Sum(nil)
	return sum[:keySize]
}
