package proxy

import "sync"

// relayBufferSize is the chunk size for each relay direction: every read
// pulls at most this many bytes before they are written through.
const relayBufferSize = 4096

var relayBuffers = sync.Pool{
	New: func() any {
		b := make([]byte, relayBufferSize)
		return &b
	},
}

func getRelayBuffer() []byte {
	return *relayBuffers.Get().(*[]byte)
}

func putRelayBuffer(b []byte) {
	// The &b conversion allocates 32 bytes; unavoidable when putting a
	// non-pointer into an interface.
	relayBuffers.Put(&b)
}
