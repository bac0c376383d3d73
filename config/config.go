package config

import "fmt"

type Configs struct {
	Env string

	Database  DatabaseConfigs
	ApiServer ServerConfigs
	Spin      SpinConfigs
}

type DatabaseConfigs struct {
	Host     string
	Port     string
	Database string
	User     string
	Password string
}

func (d *DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type ServerConfigs struct {
	Host string
	Port string
	Cert string
	Key  string
}

type SpinConfigs struct {
	// MaxCommitRetry bounds how many times a spin is replayed after a
	// write-write conflict on the reward inventory before giving up.
	MaxCommitRetry int
}
