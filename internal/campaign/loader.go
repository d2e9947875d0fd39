package campaign

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"communiply/pkg/models"
)

// Load reads a campaign from a YAML or JSON file. An empty path yields the built-in example.
func Load(path string) (*models.CampaignRequest, error) {
	if path == "" {
		return models.ExampleCampaign(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read the campaign file")
	}

	c := new(models.CampaignRequest)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, c)
	default:
		err = yaml.UnmarshalStrict(data, c)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "invalid campaign file %s", path)
	}
	return c, nil
}
