package proto

// SyncKey is the dictionary key carrying the phone's Unix time (UTC seconds).
const SyncKey uint32 = 0

// DecodeSync extracts the Unix-seconds timestamp from an inbound sync message.
//
// Other keys are ignored.
func DecodeSync(payload []byte) (int64, error) {
	d, err := DecodeDict(payload)
	if err != nil {
		return 0, err
	}
	return d.Int(SyncKey)
}

// EncodeSync builds the sync message a phone sends.
func EncodeSync(unix int64) []byte {
	b, err := EncodeDict(Dict{IntTuple(SyncKey, unix)})
	if err != nil {
		// A single fixed-width tuple always fits.
		panic(err)
	}
	return b
}
