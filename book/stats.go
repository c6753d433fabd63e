package book

// MappingStats summarizes how much of a word sequence an alignment covered.
type MappingStats struct {
	// TotalWords and MappedWords count the words under this node and those
	// carrying a transcription index.
	TotalWords  int `json:"totalWords"`
	MappedWords int `json:"mappedWords"`

	// Coverage is MappedWords/TotalWords, 0 for an empty node.
	Coverage float64 `json:"coverage"`

	// AverageConfidence is the mean confidence over mapped words, 0 when
	// nothing is mapped.
	AverageConfidence float64 `json:"averageConfidence"`
}

// merge accumulates word-level counts; ratios are finalized by finish.
func (m *MappingStats) merge(other MappingStats) {
	m.TotalWords += other.TotalWords
	m.MappedWords += other.MappedWords
	// AverageConfidence temporarily carries the confidence sum during
	// aggregation.
	m.AverageConfidence += other.AverageConfidence * float64(other.MappedWords)
}

// finish converts accumulated sums into ratios.
func (m *MappingStats) finish() {
	if m.MappedWords > 0 {
		m.AverageConfidence /= float64(m.MappedWords)
	} else {
		m.AverageConfidence = 0
	}
	if m.TotalWords > 0 {
		m.Coverage = float64(m.MappedWords) / float64(m.TotalWords)
	}
}

// Timing returns the aggregate audio span over mapped words: minimum start
// to maximum end, or nil when no word is mapped.
func (s *Sentence) Timing() *AudioTiming {
	var agg *AudioTiming
	for i := range s.Words {
		t := s.Words[i].Timing
		if t == nil {
			continue
		}
		if agg == nil {
			agg = &AudioTiming{Start: t.Start, End: t.End}
			continue
		}
		if t.Start < agg.Start {
			agg.Start = t.Start
		}
		if t.End > agg.End {
			agg.End = t.End
		}
	}

	return agg
}

// AverageConfidence is the mean confidence over mapped words, 0 when no
// word carries one.
func (s *Sentence) AverageConfidence() float64 {
	var sum float64
	var count int
	for i := range s.Words {
		if c := s.Words[i].Confidence; c != nil {
			sum += *c
			count++
		}
	}
	if count == 0 {
		return 0
	}

	return sum / float64(count)
}

// IsFullyMapped reports whether every word has a transcription index.
// An empty sentence is not considered mapped.
func (s *Sentence) IsFullyMapped() bool {
	if len(s.Words) == 0 {
		return false
	}
	for i := range s.Words {
		if !s.Words[i].IsMapped() {
			return false
		}
	}

	return true
}

// Stats rolls up mapping statistics over the sentence's words.
func (s *Sentence) Stats() MappingStats {
	var m MappingStats
	m.TotalWords = len(s.Words)
	var sum float64
	for i := range s.Words {
		if s.Words[i].IsMapped() {
			m.MappedWords++
			if c := s.Words[i].Confidence; c != nil {
				sum += *c
			}
		}
	}
	if m.MappedWords > 0 {
		m.AverageConfidence = sum / float64(m.MappedWords)
	}
	if m.TotalWords > 0 {
		m.Coverage = float64(m.MappedWords) / float64(m.TotalWords)
	}

	return m
}

// Stats rolls up mapping statistics over the section's sentences.
func (s *Section) Stats() MappingStats {
	var m MappingStats
	for _, sent := range s.Sentences {
		m.merge(sent.Stats())
	}
	m.finish()

	return m
}

// Stats rolls up mapping statistics over the chapter's sections.
func (c *Chapter) Stats() MappingStats {
	var m MappingStats
	for _, sec := range c.Sections {
		m.merge(sec.Stats())
	}
	m.finish()

	return m
}

// Stats rolls up mapping statistics over the whole book, cover included.
func (b *Book) Stats() MappingStats {
	var m MappingStats
	for _, sec := range b.Cover {
		m.merge(sec.Stats())
	}
	for _, ch := range b.Chapters {
		for _, sec := range ch.Sections {
			m.merge(sec.Stats())
		}
	}
	m.finish()

	return m
}
