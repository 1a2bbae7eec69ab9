package domain

// Manifest is the declarative environment specification (environment.yml).
type Manifest struct {
	// Name is the optional environment name.
	Name string

	// Channels lists the package channels in priority order.
	Channels []string

	// Platforms lists the target platforms in declaration order (e.g., "linux-64", "osx-arm64").
	Platforms []string

	// Dependencies lists the abstract dependency constraints.
	Dependencies []DependencySpec
}

// DependencyNames returns the bare package names of every dependency, in declaration
// order, without duplicates.
func (m *Manifest) DependencyNames() []string {
	seen := make(map[string]struct{})
	var names []string
	for _, dep := range m.Dependencies {
		for _, name := range dep.Names() {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	return names
}

// DependencySpec is a single entry of the manifest dependency list.
// It is either a SimpleSpec or a ChanneledSpec.
type DependencySpec interface {
	// Names returns the bare package names this entry contributes.
	Names() []string

	isDependencySpec()
}

// SimpleSpec is a dependency given as a single constraint string (e.g., "numpy>=1.26").
type SimpleSpec struct {
	Constraint string
	name       string
}

// NewSimpleSpec validates the constraint and returns the spec.
func NewSimpleSpec(constraint string) (SimpleSpec, error) {
	name, err := MatchSpecName(constraint)
	if err != nil {
		return SimpleSpec{}, err
	}
	return SimpleSpec{Constraint: constraint, name: name}, nil
}

// Names returns the package name of the constraint.
func (s SimpleSpec) Names() []string {
	return []string{s.name}
}

func (SimpleSpec) isDependencySpec() {}

// ChanneledSpec is a single-key mapping from a channel (installer) name to a list of
// constraints, such as the "pip" section of an environment file.
type ChanneledSpec struct {
	Channel     string
	Constraints []string
	name        string
}

// NewChanneledSpec validates the channel key and returns the spec.
// The constraints under the channel are not resolved by the solver as conda
// packages, so only the channel key contributes a name.
func NewChanneledSpec(channel string, constraints []string) (ChanneledSpec, error) {
	name, err := MatchSpecName(channel)
	if err != nil {
		return ChanneledSpec{}, err
	}
	return ChanneledSpec{Channel: channel, Constraints: constraints, name: name}, nil
}

// Names returns the package name of the channel key.
func (s ChanneledSpec) Names() []string {
	return []string{s.name}
}

func (ChanneledSpec) isDependencySpec() {}
