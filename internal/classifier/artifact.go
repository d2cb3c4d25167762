package classifier

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"os"

	"SilverAdvisor/internal/model"
)

// Classifier is the opaque prediction surface of a pre-trained model.
type Classifier interface {
	Predict(features []float64) (int, error)
	PredictProba(features []float64) ([]float64, error)
}

// LabelEncoder maps label indices back to category names. Classes is
// ordered and aligned with the columns of PredictProba's output.
type LabelEncoder interface {
	InverseTransform(index int) (string, error)
	Classes() []string
}

// Artifact is a file-backed linear softmax model implementing both
// Classifier and LabelEncoder. Training happens elsewhere; this only
// evaluates the exported parameters.
type Artifact struct {
	FeatureNames []string    `json:"features"`
	ClassNames   []string    `json:"classes"`
	Coefficients [][]float64 `json:"coefficients"` // one row of weights per class
	Intercepts   []float64   `json:"intercepts"`
}

// LoadArtifact reads and validates a classifier artifact from a JSON file.
func LoadArtifact(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read classifier artifact: %w", err)
	}
	var a Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("parse classifier artifact: %w", err)
	}

	if len(a.ClassNames) == 0 || len(a.FeatureNames) == 0 {
		return nil, fmt.Errorf("classifier artifact missing classes or features")
	}
	if len(a.Coefficients) != len(a.ClassNames) || len(a.Intercepts) != len(a.ClassNames) {
		return nil, fmt.Errorf("classifier artifact: %d classes but %d weight rows and %d intercepts",
			len(a.ClassNames), len(a.Coefficients), len(a.Intercepts))
	}
	for i, row := range a.Coefficients {
		if len(row) != len(a.FeatureNames) {
			return nil, fmt.Errorf("classifier artifact: weight row %d has %d values, want %d",
				i, len(row), len(a.FeatureNames))
		}
	}

	log.Printf("[INFO] classifier artifact loaded: %d classes, %d features", len(a.ClassNames), len(a.FeatureNames))
	return &a, nil
}

// PredictProba returns the softmax distribution over classes, aligned
// with Classes().
func (a *Artifact) PredictProba(features []float64) ([]float64, error) {
	if len(features) != len(a.FeatureNames) {
		return nil, fmt.Errorf("predict: got %d features, want %d", len(features), len(a.FeatureNames))
	}

	scores := make([]float64, len(a.ClassNames))
	maxScore := math.Inf(-1)
	for i, row := range a.Coefficients {
		s := a.Intercepts[i]
		for j, w := range row {
			s += w * features[j]
		}
		scores[i] = s
		if s > maxScore {
			maxScore = s
		}
	}

	// Softmax with max-shift for numeric stability.
	var sum float64
	for i, s := range scores {
		scores[i] = math.Exp(s - maxScore)
		sum += scores[i]
	}
	for i := range scores {
		scores[i] /= sum
	}
	return scores, nil
}

// Predict returns the index of the most probable class.
func (a *Artifact) Predict(features []float64) (int, error) {
	proba, err := a.PredictProba(features)
	if err != nil {
		return 0, err
	}
	best := 0
	for i, p := range proba {
		if p > proba[best] {
			best = i
		}
	}
	return best, nil
}

// InverseTransform maps a label index back to its category name.
func (a *Artifact) InverseTransform(index int) (string, error) {
	if index < 0 || index >= len(a.ClassNames) {
		return "", fmt.Errorf("label index %d out of range [0, %d)", index, len(a.ClassNames))
	}
	return a.ClassNames[index], nil
}

// Classes returns the ordered class labels.
func (a *Artifact) Classes() []string {
	return a.ClassNames
}

// FeatureVector extracts the artifact's named features from a survey
// profile, in the artifact's declared order.
func (a *Artifact) FeatureVector(p *model.SurveyProfile) ([]float64, error) {
	features := make([]float64, len(a.FeatureNames))
	for i, name := range a.FeatureNames {
		switch name {
		case "age":
			features[i] = float64(p.Age)
		case "household_size":
			features[i] = float64(p.HouseholdSize)
		case "pension":
			features[i] = p.Pension
		case "assets":
			features[i] = p.Assets
		case "monthly_expense":
			features[i] = p.MonthlyExpense
		case "hobby_expense":
			features[i] = p.HobbyExpense
		default:
			return nil, fmt.Errorf("unknown feature %q in classifier artifact", name)
		}
	}
	return features, nil
}

// ClassifyWithArtifact runs the full artifact path: feature extraction,
// prediction, and label decoding, returning the category name and the
// probability distribution aligned with the artifact's classes.
func ClassifyWithArtifact(a *Artifact, p *model.SurveyProfile) (string, []float64, error) {
	features, err := a.FeatureVector(p)
	if err != nil {
		return "", nil, err
	}
	idx, err := a.Predict(features)
	if err != nil {
		return "", nil, err
	}
	label, err := a.InverseTransform(idx)
	if err != nil {
		return "", nil, err
	}
	proba, err := a.PredictProba(features)
	if err != nil {
		return "", nil, err
	}
	return label, proba, nil
}
