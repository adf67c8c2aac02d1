package clusterer

import "math"

// noiseLabel marks points outside any dense neighborhood
const noiseLabel = -1

// dbscanCosine runs density-based clustering over embedding vectors using
// cosine distance. Points with at least minPoints neighbors within eps seed
// clusters; reachable neighbors are absorbed; everything else keeps the
// noise label. Labels are assigned in scan order, so identical input
// produces identical labels.
func dbscanCosine(vectors [][]float32, eps float64, minPoints int) []int {
	n := len(vectors)
	labels := make([]int, n)
	visited := make([]bool, n)
	for i := range labels {
		labels[i] = noiseLabel
	}

	clusterID := 0
	for i := 0; i < n; i++ {
		if visited[i] {
			continue
		}
		visited[i] = true

		neighbors := regionQuery(vectors, i, eps)
		if len(neighbors) < minPoints {
			continue
		}

		expandCluster(vectors, i, neighbors, clusterID, eps, minPoints, visited, labels)
		clusterID++
	}

	return labels
}

// expandCluster grows a cluster from a core point by absorbing
// density-reachable neighbors
func expandCluster(vectors [][]float32, pointIdx int, neighbors []int, clusterID int, eps float64, minPoints int, visited []bool, labels []int) {
	labels[pointIdx] = clusterID

	queue := make([]int, len(neighbors))
	copy(queue, neighbors)

	for head := 0; head < len(queue); head++ {
		idx := queue[head]

		if !visited[idx] {
			visited[idx] = true
			idxNeighbors := regionQuery(vectors, idx, eps)
			if len(idxNeighbors) >= minPoints {
				queue = append(queue, idxNeighbors...)
			}
		}

		if labels[idx] == noiseLabel {
			labels[idx] = clusterID
		}
	}
}

// regionQuery returns the indices of all points within eps cosine distance
// of the given point, the point itself included
func regionQuery(vectors [][]float32, pointIdx int, eps float64) []int {
	var neighbors []int
	for i := range vectors {
		if cosineDistance(vectors[pointIdx], vectors[i]) <= eps {
			neighbors = append(neighbors, i)
		}
	}
	return neighbors
}

func cosineDistance(a, b []float32) float64 {
	return 1.0 - cosineSimilarity(a, b)
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
