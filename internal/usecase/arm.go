package usecase

import (
	"strings"

	"github.com/aalvaropc/twolink/internal/domain"
	"github.com/aalvaropc/twolink/internal/ports"
)

// ResolveArm picks the first non-empty reference and loads it.
// When nothing is named, or the workspace default "default" has no profile on
// disk, the built-in unit arm is returned.
func ResolveArm(loader ports.ArmLoader, refs ...string) (domain.Arm, error) {
	ref := ""
	for _, r := range refs {
		if strings.TrimSpace(r) != "" {
			ref = strings.TrimSpace(r)
			break
		}
	}

	builtin := domain.DefaultArm()
	if ref == "" || loader == nil {
		if ref != "" && ref != builtin.Name {
			return domain.Arm{}, &domain.OpError{
				Op:   "usecase.resolve_arm",
				Kind: domain.KindNotFound,
				Path: ref,
				Err:  domain.ErrNotFound,
			}
		}
		return builtin, nil
	}

	arm, err := loader.LoadArm(ref)
	if err != nil {
		if ref == builtin.Name && domain.IsKind(err, domain.KindNotFound) {
			return builtin, nil
		}
		return domain.Arm{}, err
	}
	return arm, nil
}
