package dat

// Stats reports density metrics for a DATrie.
type Stats struct {
	UsedSlots  int
	TotalSlots int
	Vectors    int // states carrying a weight vector
}

// FillRatio returns UsedSlots/TotalSlots, 0 for an empty trie.
func (s Stats) FillRatio() float64 {
	if s.TotalSlots == 0 {
		return 0
	}
	return float64(s.UsedSlots) / float64(s.TotalSlots)
}

// Stats computes density metrics for d.
func (d *DATrie) Stats() Stats {
	stats := Stats{TotalSlots: d.Len()}
	for i, used := range d.used {
		if used {
			stats.UsedSlots++
		}
		if d.Data[i] != nil {
			stats.Vectors++
		}
	}
	return stats
}
