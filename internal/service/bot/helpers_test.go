package bot

type recordingMetrics struct {
	counts map[string]float64
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{counts: make(map[string]float64)}
}

func (m *recordingMetrics) IncNotification(bot, kind, result string) {
	m.counts[bot+"/"+kind+"/"+result]++
}
