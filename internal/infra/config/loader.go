package config

import (
	"os"

	"github.com/aalvaropc/twolink/internal/domain"
	"gopkg.in/yaml.v3"
)

func LoadJob(path string) (domain.Job, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Job{}, &domain.OpError{
			Op:   "config.load_job",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLJob
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.Job{}, &domain.OpError{
			Op:   "config.load_job",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapJob(path, dto)
}

func LoadArm(path string) (domain.Arm, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Arm{}, &domain.OpError{
			Op:   "config.load_arm",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLArm
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.Arm{}, &domain.OpError{
			Op:   "config.load_arm",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapArm(path, dto)
}
