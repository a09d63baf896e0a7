package stoich

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// COBRA-style JSON model schema, the interchange format genome-scale
// models such as iML1515 ship in.
type jsonModel struct {
	ID          string           `json:"id"`
	Metabolites []jsonMetabolite `json:"metabolites"`
	Reactions   []jsonReaction   `json:"reactions"`
	Genes       []jsonGene       `json:"genes"`
}

type jsonMetabolite struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Compartment string `json:"compartment"`
}

type jsonReaction struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	Metabolites      map[string]float64 `json:"metabolites"`
	LowerBound       float64            `json:"lower_bound"`
	UpperBound       float64            `json:"upper_bound"`
	GeneReactionRule string             `json:"gene_reaction_rule"`
}

type jsonGene struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ParseJSON builds a Network from COBRA JSON model bytes. Bounds wider than
// ±DefaultBound are clamped at ingestion.
func ParseJSON(data []byte) (*Network, error) {
	var jm jsonModel
	if err := json.Unmarshal(data, &jm); err != nil {
		return nil, fmt.Errorf("stoich: parsing model JSON: %w", err)
	}
	if len(jm.Reactions) == 0 {
		return nil, fmt.Errorf("stoich: model %q has no reactions", jm.ID)
	}
	n := NewNetwork(jm.ID)
	for _, m := range jm.Metabolites {
		if err := n.AddMetabolite(m.ID, m.Name, m.Compartment); err != nil {
			return nil, err
		}
	}
	for _, g := range jm.Genes {
		n.AddGene(g.ID)
	}
	for _, r := range jm.Reactions {
		err := n.AddReactionWithRule(r.ID, r.Name, r.Metabolites, r.LowerBound, r.UpperBound, r.GeneReactionRule)
		if err != nil {
			return nil, err
		}
	}
	logrus.Infof("loaded model %s: %d reactions, %d metabolites, %d genes",
		n.ID, len(n.rxnOrder), len(n.metOrder), len(n.genes))
	return n, nil
}

// LoadJSON reads a COBRA JSON model from disk.
func LoadJSON(path string) (*Network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("stoich: reading model: %w", err)
	}
	return ParseJSON(data)
}
