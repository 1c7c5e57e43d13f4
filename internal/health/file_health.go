package health

type FileSizeDistribution struct {
	TinyFiles    int64 `json:"tiny_files"`
	SmallFiles   int64 `json:"small_files"`
	OptimalFiles int64 `json:"optimal_files"`
	LargeFiles   int64 `json:"large_files"`
}

type FileHealth struct {
	TotalFiles           int64                `json:"total_files"`
	SmallFileCount       int64                `json:"small_file_count"`
	AvgFileSizeMb        float64              `json:"avg_file_size_mb"`
	FileSizeDistribution FileSizeDistribution `json:"file_size_distribution"`
	SmallFileRatio       float64              `json:"small_file_ratio"`
	Estimated            bool                 `json:"estimated"`
}

// FileHealthAnalyzer derives the file population of a table.
type FileHealthAnalyzer interface {
	AnalyzeFiles(table Table, snapshots []Snapshot) FileHealth
}

// SummaryFileHealthAnalyzer estimates the size distribution from the latest
// snapshot's counters by splitting the file count with fixed percentages per
// average-size bucket. Tables that carry live data file sizes are classified
// file by file instead.
type SummaryFileHealthAnalyzer struct{}

func (a SummaryFileHealthAnalyzer) AnalyzeFiles(table Table, snapshots []Snapshot) FileHealth {
	if len(table.DataFileSizes) > 0 {
		return classifyFileSizes(table.DataFileSizes)
	}

	return estimateFromSummary(snapshots)
}

func estimateFromSummary(snapshots []Snapshot) FileHealth {
	var totalFiles int64
	var totalSizeBytes float64

	if len(snapshots) > 0 {
		latest := snapshots[len(snapshots)-1]
		totalFiles = latest.Summary.Int(SummaryAddedDataFiles)
		totalSizeBytes, _ = latest.Summary.Float(SummaryTotalSize)
	}

	avgFileSizeMb := 0.0
	if totalFiles > 0 {
		avgFileSizeMb = totalSizeBytes / float64(totalFiles) / bytesPerMb
	}

	dist := splitByAverage(totalFiles, avgFileSizeMb)

	return newFileHealth(totalFiles, avgFileSizeMb, dist, true)
}

func splitByAverage(totalFiles int64, avgFileSizeMb float64) FileSizeDistribution {
	pct := func(p int64) int64 {
		return totalFiles/100*p + totalFiles%100*p/100
	}

	switch {
	case avgFileSizeMb < TinyFileThresholdMb:
		return FileSizeDistribution{TinyFiles: pct(70), SmallFiles: pct(30)}
	case avgFileSizeMb < SmallFileThresholdMb:
		return FileSizeDistribution{TinyFiles: pct(20), SmallFiles: pct(60), OptimalFiles: pct(20)}
	case avgFileSizeMb <= OptimalFileMaxMb:
		return FileSizeDistribution{OptimalFiles: totalFiles}
	default:
		return FileSizeDistribution{OptimalFiles: pct(70), LargeFiles: pct(30)}
	}
}

func classifyFileSizes(sizes []int64) FileHealth {
	var dist FileSizeDistribution
	var totalBytes float64

	for _, size := range sizes {
		if size < 0 {
			size = 0
		}

		totalBytes += float64(size)
		sizeMb := float64(size) / bytesPerMb

		switch {
		case sizeMb < TinyFileThresholdMb:
			dist.TinyFiles++
		case sizeMb < SmallFileThresholdMb:
			dist.SmallFiles++
		case sizeMb <= OptimalFileMaxMb:
			dist.OptimalFiles++
		default:
			dist.LargeFiles++
		}
	}

	totalFiles := int64(len(sizes))

	return newFileHealth(totalFiles, totalBytes/float64(totalFiles)/bytesPerMb, dist, false)
}

func newFileHealth(totalFiles int64, avgFileSizeMb float64, dist FileSizeDistribution, estimated bool) FileHealth {
	smallFileCount := dist.TinyFiles + dist.SmallFiles

	ratio := 0.0
	if totalFiles > 0 {
		ratio = float64(smallFileCount) / float64(totalFiles)
	}

	return FileHealth{
		TotalFiles:           totalFiles,
		SmallFileCount:       smallFileCount,
		AvgFileSizeMb:        avgFileSizeMb,
		FileSizeDistribution: dist,
		SmallFileRatio:       ratio,
		Estimated:            estimated,
	}
}
