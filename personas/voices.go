package personas

// VoiceFor returns the synthesis voice bound to a persona key. The second
// return value is false when the persona has no voice, meaning no audio is
// available for it.
func VoiceFor(key string) (string, bool) {
	voiceID, ok := voiceIDs[key]
	return voiceID, ok
}
