package vox

import "image/color"

// Palette maps a voxel color index to its RGBA color.
type Palette [256]color.RGBA

// defaultPalette is the stock table used when a file has no RGBA chunk.
// Index 0 is transparent; voxels address it directly by color index.
var defaultPalette = Palette{
	{R: 0x00, G: 0x00, B: 0x00, A: 0x00}, // 0
	{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, // 1
	{R: 0xff, G: 0xff, B: 0xcc, A: 0xff}, // 2
	{R: 0xff, G: 0xff, B: 0x99, A: 0xff}, // 3
	{R: 0xff, G: 0xff, B: 0x66, A: 0xff}, // 4
	{R: 0xff, G: 0xff, B: 0x33, A: 0xff}, // 5
	{R: 0xff, G: 0xff, B: 0x00, A: 0xff}, // 6
	{R: 0xff, G: 0xcc, B: 0xff, A: 0xff}, // 7
	{R: 0xff, G: 0xcc, B: 0xcc, A: 0xff}, // 8
	{R: 0xff, G: 0xcc, B: 0x99, A: 0xff}, // 9
	{R: 0xff, G: 0xcc, B: 0x66, A: 0xff}, // 10
	{R: 0xff, G: 0xcc, B: 0x33, A: 0xff}, // 11
	{R: 0xff, G: 0xcc, B: 0x00, A: 0xff}, // 12
	{R: 0xff, G: 0x99, B: 0xff, A: 0xff}, // 13
	{R: 0xff, G: 0x99, B: 0xcc, A: 0xff}, // 14
	{R: 0xff, G: 0x99, B: 0x99, A: 0xff}, // 15
	{R: 0xff, G: 0x99, B: 0x66, A: 0xff}, // 16
	{R: 0xff, G: 0x99, B: 0x33, A: 0xff}, // 17
	{R: 0xff, G: 0x99, B: 0x00, A: 0xff}, // 18
	{R: 0xff, G: 0x66, B: 0xff, A: 0xff}, // 19
	{R: 0xff, G: 0x66, B: 0xcc, A: 0xff}, // 20
	{R: 0xff, G: 0x66, B: 0x99, A: 0xff}, // 21
	{R: 0xff, G: 0x66, B: 0x66, A: 0xff}, // 22
	{R: 0xff, G: 0x66, B: 0x33, A: 0xff}, // 23
	{R: 0xff, G: 0x66, B: 0x00, A: 0xff}, // 24
	{R: 0xff, G: 0x33, B: 0xff, A: 0xff}, // 25
	{R: 0xff, G: 0x33, B: 0xcc, A: 0xff}, // 26
	{R: 0xff, G: 0x33, B: 0x99, A: 0xff}, // 27
	{R: 0xff, G: 0x33, B: 0x66, A: 0xff}, // 28
	{R: 0xff, G: 0x33, B: 0x33, A: 0xff}, // 29
	{R: 0xff, G: 0x33, B: 0x00, A: 0xff}, // 30
	{R: 0xff, G: 0x00, B: 0xff, A: 0xff}, // 31
	{R: 0xff, G: 0x00, B: 0xcc, A: 0xff}, // 32
	{R: 0xff, G: 0x00, B: 0x99, A: 0xff}, // 33
	{R: 0xff, G: 0x00, B: 0x66, A: 0xff}, // 34
	{R: 0xff, G: 0x00, B: 0x33, A: 0xff}, // 35
	{R: 0xff, G: 0x00, B: 0x00, A: 0xff}, // 36
	{R: 0xcc, G: 0xff, B: 0xff, A: 0xff}, // 37
	{R: 0xcc, G: 0xff, B: 0xcc, A: 0xff}, // 38
	{R: 0xcc, G: 0xff, B: 0x99, A: 0xff}, // 39
	{R: 0xcc, G: 0xff, B: 0x66, A: 0xff}, // 40
	{R: 0xcc, G: 0xff, B: 0x33, A: 0xff}, // 41
	{R: 0xcc, G: 0xff, B: 0x00, A: 0xff}, // 42
	{R: 0xcc, G: 0xcc, B: 0xff, A: 0xff}, // 43
	{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}, // 44
	{R: 0xcc, G: 0xcc, B: 0x99, A: 0xff}, // 45
	{R: 0xcc, G: 0xcc, B: 0x66, A: 0xff}, // 46
	{R: 0xcc, G: 0xcc, B: 0x33, A: 0xff}, // 47
	{R: 0xcc, G: 0xcc, B: 0x00, A: 0xff}, // 48
	{R: 0xcc, G: 0x99, B: 0xff, A: 0xff}, // 49
	{R: 0xcc, G: 0x99, B: 0xcc, A: 0xff}, // 50
	{R: 0xcc, G: 0x99, B: 0x99, A: 0xff}, // 51
	{R: 0xcc, G: 0x99, B: 0x66, A: 0xff}, // 52
	{R: 0xcc, G: 0x99, B: 0x33, A: 0xff}, // 53
	{R: 0xcc, G: 0x99, B: 0x00, A: 0xff}, // 54
	{R: 0xcc, G: 0x66, B: 0xff, A: 0xff}, // 55
	{R: 0xcc, G: 0x66, B: 0xcc, A: 0xff}, // 56
	{R: 0xcc, G: 0x66, B: 0x99, A: 0xff}, // 57
	{R: 0xcc, G: 0x66, B: 0x66, A: 0xff}, // 58
	{R: 0xcc, G: 0x66, B: 0x33, A: 0xff}, // 59
	{R: 0xcc, G: 0x66, B: 0x00, A: 0xff}, // 60
	{R: 0xcc, G: 0x33, B: 0xff, A: 0xff}, // 61
	{R: 0xcc, G: 0x33, B: 0xcc, A: 0xff}, // 62
	{R: 0xcc, G: 0x33, B: 0x99, A: 0xff}, // 63
	{R: 0xcc, G: 0x33, B: 0x66, A: 0xff}, // 64
	{R: 0xcc, G: 0x33, B: 0x33, A: 0xff}, // 65
	{R: 0xcc, G: 0x33, B: 0x00, A: 0xff}, // 66
	{R: 0xcc, G: 0x00, B: 0xff, A: 0xff}, // 67
	{R: 0xcc, G: 0x00, B: 0xcc, A: 0xff}, // 68
	{R: 0xcc, G: 0x00, B: 0x99, A: 0xff}, // 69
	{R: 0xcc, G: 0x00, B: 0x66, A: 0xff}, // 70
	{R: 0xcc, G: 0x00, B: 0x33, A: 0xff}, // 71
	{R: 0xcc, G: 0x00, B: 0x00, A: 0xff}, // 72
	{R: 0x99, G: 0xff, B: 0xff, A: 0xff}, // 73
	{R: 0x99, G: 0xff, B: 0xcc, A: 0xff}, // 74
	{R: 0x99, G: 0xff, B: 0x99, A: 0xff}, // 75
	{R: 0x99, G: 0xff, B: 0x66, A: 0xff}, // 76
	{R: 0x99, G: 0xff, B: 0x33, A: 0xff}, // 77
	{R: 0x99, G: 0xff, B: 0x00, A: 0xff}, // 78
	{R: 0x99, G: 0xcc, B: 0xff, A: 0xff}, // 79
	{R: 0x99, G: 0xcc, B: 0xcc, A: 0xff}, // 80
	{R: 0x99, G: 0xcc, B: 0x99, A: 0xff}, // 81
	{R: 0x99, G: 0xcc, B: 0x66, A: 0xff}, // 82
	{R: 0x99, G: 0xcc, B: 0x33, A: 0xff}, // 83
	{R: 0x99, G: 0xcc, B: 0x00, A: 0xff}, // 84
	{R: 0x99, G: 0x99, B: 0xff, A: 0xff}, // 85
	{R: 0x99, G: 0x99, B: 0xcc, A: 0xff}, // 86
	{R: 0x99, G: 0x99, B: 0x99, A: 0xff}, // 87
	{R: 0x99, G: 0x99, B: 0x66, A: 0xff}, // 88
	{R: 0x99, G: 0x99, B: 0x33, A: 0xff}, // 89
	{R: 0x99, G: 0x99, B: 0x00, A: 0xff}, // 90
	{R: 0x99, G: 0x66, B: 0xff, A: 0xff}, // 91
	{R: 0x99, G: 0x66, B: 0xcc, A: 0xff}, // 92
	{R: 0x99, G: 0x66, B: 0x99, A: 0xff}, // 93
	{R: 0x99, G: 0x66, B: 0x66, A: 0xff}, // 94
	{R: 0x99, G: 0x66, B: 0x33, A: 0xff}, // 95
	{R: 0x99, G: 0x66, B: 0x00, A: 0xff}, // 96
	{R: 0x99, G: 0x33, B: 0xff, A: 0xff}, // 97
	{R: 0x99, G: 0x33, B: 0xcc, A: 0xff}, // 98
	{R: 0x99, G: 0x33, B: 0x99, A: 0xff}, // 99
	{R: 0x99, G: 0x33, B: 0x66, A: 0xff}, // 100
	{R: 0x99, G: 0x33, B: 0x33, A: 0xff}, // 101
	{R: 0x99, G: 0x33, B: 0x00, A: 0xff}, // 102
	{R: 0x99, G: 0x00, B: 0xff, A: 0xff}, // 103
	{R: 0x99, G: 0x00, B: 0xcc, A: 0xff}, // 104
	{R: 0x99, G: 0x00, B: 0x99, A: 0xff}, // 105
	{R: 0x99, G: 0x00, B: 0x66, A: 0xff}, // 106
	{R: 0x99, G: 0x00, B: 0x33, A: 0xff}, // 107
	{R: 0x99, G: 0x00, B: 0x00, A: 0xff}, // 108
	{R: 0x66, G: 0xff, B: 0xff, A: 0xff}, // 109
	{R: 0x66, G: 0xff, B: 0xcc, A: 0xff}, // 110
	{R: 0x66, G: 0xff, B: 0x99, A: 0xff}, // 111
	{R: 0x66, G: 0xff, B: 0x66, A: 0xff}, // 112
	{R: 0x66, G: 0xff, B: 0x33, A: 0xff}, // 113
	{R: 0x66, G: 0xff, B: 0x00, A: 0xff}, // 114
	{R: 0x66, G: 0xcc, B: 0xff, A: 0xff}, // 115
	{R: 0x66, G: 0xcc, B: 0xcc, A: 0xff}, // 116
	{R: 0x66, G: 0xcc, B: 0x99, A: 0xff}, // 117
	{R: 0x66, G: 0xcc, B: 0x66, A: 0xff}, // 118
	{R: 0x66, G: 0xcc, B: 0x33, A: 0xff}, // 119
	{R: 0x66, G: 0xcc, B: 0x00, A: 0xff}, // 120
	{R: 0x66, G: 0x99, B: 0xff, A: 0xff}, // 121
	{R: 0x66, G: 0x99, B: 0xcc, A: 0xff}, // 122
	{R: 0x66, G: 0x99, B: 0x99, A: 0xff}, // 123
	{R: 0x66, G: 0x99, B: 0x66, A: 0xff}, // 124
	{R: 0x66, G: 0x99, B: 0x33, A: 0xff}, // 125
	{R: 0x66, G: 0x99, B: 0x00, A: 0xff}, // 126
	{R: 0x66, G: 0x66, B: 0xff, A: 0xff}, // 127
	{R: 0x66, G: 0x66, B: 0xcc, A: 0xff}, // 128
	{R: 0x66, G: 0x66, B: 0x99, A: 0xff}, // 129
	{R: 0x66, G: 0x66, B: 0x66, A: 0xff}, // 130
	{R: 0x66, G: 0x66, B: 0x33, A: 0xff}, // 131
	{R: 0x66, G: 0x66, B: 0x00, A: 0xff}, // 132
	{R: 0x66, G: 0x33, B: 0xff, A: 0xff}, // 133
	{R: 0x66, G: 0x33, B: 0xcc, A: 0xff}, // 134
	{R: 0x66, G: 0x33, B: 0x99, A: 0xff}, // 135
	{R: 0x66, G: 0x33, B: 0x66, A: 0xff}, // 136
	{R: 0x66, G: 0x33, B: 0x33, A: 0xff}, // 137
	{R: 0x66, G: 0x33, B: 0x00, A: 0xff}, // 138
	{R: 0x66, G: 0x00, B: 0xff, A: 0xff}, // 139
	{R: 0x66, G: 0x00, B: 0xcc, A: 0xff}, // 140
	{R: 0x66, G: 0x00, B: 0x99, A: 0xff}, // 141
	{R: 0x66, G: 0x00, B: 0x66, A: 0xff}, // 142
	{R: 0x66, G: 0x00, B: 0x33, A: 0xff}, // 143
	{R: 0x66, G: 0x00, B: 0x00, A: 0xff}, // 144
	{R: 0x33, G: 0xff, B: 0xff, A: 0xff}, // 145
	{R: 0x33, G: 0xff, B: 0xcc, A: 0xff}, // 146
	{R: 0x33, G: 0xff, B: 0x99, A: 0xff}, // 147
	{R: 0x33, G: 0xff, B: 0x66, A: 0xff}, // 148
	{R: 0x33, G: 0xff, B: 0x33, A: 0xff}, // 149
	{R: 0x33, G: 0xff, B: 0x00, A: 0xff}, // 150
	{R: 0x33, G: 0xcc, B: 0xff, A: 0xff}, // 151
	{R: 0x33, G: 0xcc, B: 0xcc, A: 0xff}, // 152
	{R: 0x33, G: 0xcc, B: 0x99, A: 0xff}, // 153
	{R: 0x33, G: 0xcc, B: 0x66, A: 0xff}, // 154
	{R: 0x33, G: 0xcc, B: 0x33, A: 0xff}, // 155
	{R: 0x33, G: 0xcc, B: 0x00, A: 0xff}, // 156
	{R: 0x33, G: 0x99, B: 0xff, A: 0xff}, // 157
	{R: 0x33, G: 0x99, B: 0xcc, A: 0xff}, // 158
	{R: 0x33, G: 0x99, B: 0x99, A: 0xff}, // 159
	{R: 0x33, G: 0x99, B: 0x66, A: 0xff}, // 160
	{R: 0x33, G: 0x99, B: 0x33, A: 0xff}, // 161
	{R: 0x33, G: 0x99, B: 0x00, A: 0xff}, // 162
	{R: 0x33, G: 0x66, B: 0xff, A: 0xff}, // 163
	{R: 0x33, G: 0x66, B: 0xcc, A: 0xff}, // 164
	{R: 0x33, G: 0x66, B: 0x99, A: 0xff}, // 165
	{R: 0x33, G: 0x66, B: 0x66, A: 0xff}, // 166
	{R: 0x33, G: 0x66, B: 0x33, A: 0xff}, // 167
	{R: 0x33, G: 0x66, B: 0x00, A: 0xff}, // 168
	{R: 0x33, G: 0x33, B: 0xff, A: 0xff}, // 169
	{R: 0x33, G: 0x33, B: 0xcc, A: 0xff}, // 170
	{R: 0x33, G: 0x33, B: 0x99, A: 0xff}, // 171
	{R: 0x33, G: 0x33, B: 0x66, A: 0xff}, // 172
	{R: 0x33, G: 0x33, B: 0x33, A: 0xff}, // 173
	{R: 0x33, G: 0x33, B: 0x00, A: 0xff}, // 174
	{R: 0x33, G: 0x00, B: 0xff, A: 0xff}, // 175
	{R: 0x33, G: 0x00, B: 0xcc, A: 0xff}, // 176
	{R: 0x33, G: 0x00, B: 0x99, A: 0xff}, // 177
	{R: 0x33, G: 0x00, B: 0x66, A: 0xff}, // 178
	{R: 0x33, G: 0x00, B: 0x33, A: 0xff}, // 179
	{R: 0x33, G: 0x00, B: 0x00, A: 0xff}, // 180
	{R: 0x00, G: 0xff, B: 0xff, A: 0xff}, // 181
	{R: 0x00, G: 0xff, B: 0xcc, A: 0xff}, // 182
	{R: 0x00, G: 0xff, B: 0x99, A: 0xff}, // 183
	{R: 0x00, G: 0xff, B: 0x66, A: 0xff}, // 184
	{R: 0x00, G: 0xff, B: 0x33, A: 0xff}, // 185
	{R: 0x00, G: 0xff, B: 0x00, A: 0xff}, // 186
	{R: 0x00, G: 0xcc, B: 0xff, A: 0xff}, // 187
	{R: 0x00, G: 0xcc, B: 0xcc, A: 0xff}, // 188
	{R: 0x00, G: 0xcc, B: 0x99, A: 0xff}, // 189
	{R: 0x00, G: 0xcc, B: 0x66, A: 0xff}, // 190
	{R: 0x00, G: 0xcc, B: 0x33, A: 0xff}, // 191
	{R: 0x00, G: 0xcc, B: 0x00, A: 0xff}, // 192
	{R: 0x00, G: 0x99, B: 0xff, A: 0xff}, // 193
	{R: 0x00, G: 0x99, B: 0xcc, A: 0xff}, // 194
	{R: 0x00, G: 0x99, B: 0x99, A: 0xff}, // 195
	{R: 0x00, G: 0x99, B: 0x66, A: 0xff}, // 196
	{R: 0x00, G: 0x99, B: 0x33, A: 0xff}, // 197
	{R: 0x00, G: 0x99, B: 0x00, A: 0xff}, // 198
	{R: 0x00, G: 0x66, B: 0xff, A: 0xff}, // 199
	{R: 0x00, G: 0x66, B: 0xcc, A: 0xff}, // 200
	{R: 0x00, G: 0x66, B: 0x99, A: 0xff}, // 201
	{R: 0x00, G: 0x66, B: 0x66, A: 0xff}, // 202
	{R: 0x00, G: 0x66, B: 0x33, A: 0xff}, // 203
	{R: 0x00, G: 0x66, B: 0x00, A: 0xff}, // 204
	{R: 0x00, G: 0x33, B: 0xff, A: 0xff}, // 205
	{R: 0x00, G: 0x33, B: 0xcc, A: 0xff}, // 206
	{R: 0x00, G: 0x33, B: 0x99, A: 0xff}, // 207
	{R: 0x00, G: 0x33, B: 0x66, A: 0xff}, // 208
	{R: 0x00, G: 0x33, B: 0x33, A: 0xff}, // 209
	{R: 0x00, G: 0x33, B: 0x00, A: 0xff}, // 210
	{R: 0x00, G: 0x00, B: 0xff, A: 0xff}, // 211
	{R: 0x00, G: 0x00, B: 0xcc, A: 0xff}, // 212
	{R: 0x00, G: 0x00, B: 0x99, A: 0xff}, // 213
	{R: 0x00, G: 0x00, B: 0x66, A: 0xff}, // 214
	{R: 0x00, G: 0x00, B: 0x33, A: 0xff}, // 215
	{R: 0xee, G: 0x00, B: 0x00, A: 0xff}, // 216
	{R: 0xdd, G: 0x00, B: 0x00, A: 0xff}, // 217
	{R: 0xbb, G: 0x00, B: 0x00, A: 0xff}, // 218
	{R: 0xaa, G: 0x00, B: 0x00, A: 0xff}, // 219
	{R: 0x88, G: 0x00, B: 0x00, A: 0xff}, // 220
	{R: 0x77, G: 0x00, B: 0x00, A: 0xff}, // 221
	{R: 0x55, G: 0x00, B: 0x00, A: 0xff}, // 222
	{R: 0x44, G: 0x00, B: 0x00, A: 0xff}, // 223
	{R: 0x22, G: 0x00, B: 0x00, A: 0xff}, // 224
	{R: 0x11, G: 0x00, B: 0x00, A: 0xff}, // 225
	{R: 0x00, G: 0xee, B: 0x00, A: 0xff}, // 226
	{R: 0x00, G: 0xdd, B: 0x00, A: 0xff}, // 227
	{R: 0x00, G: 0xbb, B: 0x00, A: 0xff}, // 228
	{R: 0x00, G: 0xaa, B: 0x00, A: 0xff}, // 229
	{R: 0x00, G: 0x88, B: 0x00, A: 0xff}, // 230
	{R: 0x00, G: 0x77, B: 0x00, A: 0xff}, // 231
	{R: 0x00, G: 0x55, B: 0x00, A: 0xff}, // 232
	{R: 0x00, G: 0x44, B: 0x00, A: 0xff}, // 233
	{R: 0x00, G: 0x22, B: 0x00, A: 0xff}, // 234
	{R: 0x00, G: 0x11, B: 0x00, A: 0xff}, // 235
	{R: 0x00, G: 0x00, B: 0xee, A: 0xff}, // 236
	{R: 0x00, G: 0x00, B: 0xdd, A: 0xff}, // 237
	{R: 0x00, G: 0x00, B: 0xbb, A: 0xff}, // 238
	{R: 0x00, G: 0x00, B: 0xaa, A: 0xff}, // 239
	{R: 0x00, G: 0x00, B: 0x88, A: 0xff}, // 240
	{R: 0x00, G: 0x00, B: 0x77, A: 0xff}, // 241
	{R: 0x00, G: 0x00, B: 0x55, A: 0xff}, // 242
	{R: 0x00, G: 0x00, B: 0x44, A: 0xff}, // 243
	{R: 0x00, G: 0x00, B: 0x22, A: 0xff}, // 244
	{R: 0x00, G: 0x00, B: 0x11, A: 0xff}, // 245
	{R: 0xee, G: 0xee, B: 0xee, A: 0xff}, // 246
	{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff}, // 247
	{R: 0xbb, G: 0xbb, B: 0xbb, A: 0xff}, // 248
	{R: 0xaa, G: 0xaa, B: 0xaa, A: 0xff}, // 249
	{R: 0x88, G: 0x88, B: 0x88, A: 0xff}, // 250
	{R: 0x77, G: 0x77, B: 0x77, A: 0xff}, // 251
	{R: 0x55, G: 0x55, B: 0x55, A: 0xff}, // 252
	{R: 0x44, G: 0x44, B: 0x44, A: 0xff}, // 253
	{R: 0x22, G: 0x22, B: 0x22, A: 0xff}, // 254
	{R: 0x11, G: 0x11, B: 0x11, A: 0xff}, // 255
}

// DefaultPalette returns a copy of the built-in palette.
func DefaultPalette() Palette { return defaultPalette }
