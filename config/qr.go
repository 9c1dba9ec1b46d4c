package config

type Qr struct {
	Dir string `json:"dir" yaml:"dir"`
}

func (q *Qr) ImageDir() string {
	if q == nil || q.Dir == "" {
		return "qr_codes"
	}
	return q.Dir
}
