// gotdlib - Typed Go bindings for the TDLib JSON interface.
// Copyright (C) 2026 Sumner Evans
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package auth

import (
	"encoding/base64"

	"github.com/go-faster/errors"

	"go.mau.fi/gotdlib/pkg/tdapi"
)

// Parameters is the yaml form of setTdlibParameters.
type Parameters struct {
	APIID   int32  `yaml:"api_id"`
	APIHash string `yaml:"api_hash"`

	UseTestDC             bool   `yaml:"use_test_dc"`
	DatabaseDirectory     string `yaml:"database_directory"`
	FilesDirectory        string `yaml:"files_directory"`
	DatabaseEncryptionKey string `yaml:"database_encryption_key"`

	UseFileDatabase     bool `yaml:"use_file_database"`
	UseChatInfoDatabase bool `yaml:"use_chat_info_database"`
	UseMessageDatabase  bool `yaml:"use_message_database"`
	UseSecretChats      bool `yaml:"use_secret_chats"`

	DeviceInfo DeviceInfo `yaml:"device_info"`
}

// DeviceInfo describes the device TDLib reports to Telegram.
type DeviceInfo struct {
	DeviceModel    string `yaml:"device_model"`
	SystemVersion  string `yaml:"system_version"`
	AppVersion     string `yaml:"app_version"`
	SystemLangCode string `yaml:"system_lang_code"`
}

// Validate checks that the parameters TDLib requires are set.
func (p *Parameters) Validate() error {
	if p.APIID == 0 || p.APIHash == "" {
		return errors.New("api_id and api_hash are required")
	}
	if p.DeviceInfo.DeviceModel == "" || p.DeviceInfo.AppVersion == "" || p.DeviceInfo.SystemLangCode == "" {
		return errors.New("device_info.device_model, app_version and system_lang_code are required")
	}
	if p.DatabaseEncryptionKey != "" {
		if _, err := base64.StdEncoding.DecodeString(p.DatabaseEncryptionKey); err != nil {
			return errors.Wrap(err, "database_encryption_key must be base64")
		}
	}
	return nil
}

// Request converts p into a setTdlibParameters request. Validate should be
// called first.
func (p *Parameters) Request() *tdapi.SetTdlibParametersRequest {
	key, _ := base64.StdEncoding.DecodeString(p.DatabaseEncryptionKey)
	return tdapi.NewSetTdlibParametersRequestBuilder().
		UseTestDC(p.UseTestDC).
		DatabaseDirectory(p.DatabaseDirectory).
		FilesDirectory(p.FilesDirectory).
		DatabaseEncryptionKey(key).
		UseFileDatabase(p.UseFileDatabase).
		UseChatInfoDatabase(p.UseChatInfoDatabase).
		UseMessageDatabase(p.UseMessageDatabase).
		UseSecretChats(p.UseSecretChats).
		APIID(p.APIID).
		APIHash(p.APIHash).
		SystemLanguageCode(p.DeviceInfo.SystemLangCode).
		DeviceModel(p.DeviceInfo.DeviceModel).
		SystemVersion(p.DeviceInfo.SystemVersion).
		ApplicationVersion(p.DeviceInfo.AppVersion).
		Build()
}
