package config

type YAMLJob struct {
	Name    string      `yaml:"name"`
	Arm     string      `yaml:"arm"`
	Units   string      `yaml:"units"`
	Queries []YAMLQuery `yaml:"queries"`
}

type YAMLQuery struct {
	Name    string      `yaml:"name"`
	Forward *YAMLAngles `yaml:"forward"`
	Inverse *YAMLPoint  `yaml:"inverse"`
	Expect  YAMLExpect  `yaml:"expect"`
}

type YAMLAngles struct {
	Theta1 *float64 `yaml:"theta1"`
	Theta2 *float64 `yaml:"theta2"`
}

type YAMLPoint struct {
	X *float64 `yaml:"x"`
	Y *float64 `yaml:"y"`
}

type YAMLExpect struct {
	Position  *YAMLPoint `yaml:"position"`
	Reachable *bool      `yaml:"reachable"`
	Tolerance *float64   `yaml:"tolerance"`

	JSONPath map[string]YAMLJSONPathAssertion `yaml:"jsonpath"`
}

type YAMLJSONPathAssertion struct {
	Exists   bool     `yaml:"exists"`
	Eq       *string  `yaml:"eq"`
	Contains *string  `yaml:"contains"`
	Matches  *string  `yaml:"matches"`
	Gt       *float64 `yaml:"gt"`
	Lt       *float64 `yaml:"lt"`
}

type YAMLArm struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Links       YAMLLinks `yaml:"links"`
}

type YAMLLinks struct {
	L1 *float64 `yaml:"l1"`
	L2 *float64 `yaml:"l2"`
}
